package service

import (
	"context"
	"strings"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	Quantity        int
	Category        string
	ImageURL        string
	Active          bool
	Kind            model.ProductKind
	MaxFlavors      int
	Size            string
	AddonCategories []string
}

// ProductAdminService registers and maintains catalog products.
type ProductAdminService interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*model.Product, error)
	ToggleStatus(ctx context.Context, id string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductAdminOption configures a ProductAdminServiceImpl.
type ProductAdminOption func(*ProductAdminServiceImpl)

// WithProductGuard sets the in-flight guard for product writes.
func WithProductGuard(g *InFlight) ProductAdminOption {
	return func(s *ProductAdminServiceImpl) {
		if g != nil {
			s.guard = g
		}
	}
}

// WithCatalogInvalidation registers the catalog whose cache must be dropped after a write.
func WithCatalogInvalidation(c CatalogService) ProductAdminOption {
	return func(s *ProductAdminServiceImpl) {
		s.catalog = c
	}
}

// ProductAdminServiceImpl implements ProductAdminService.
type ProductAdminServiceImpl struct {
	products repository.ProductStore
	catalog  CatalogService
	guard    *InFlight
}

// NewProductAdminService creates the product registration service.
func NewProductAdminService(products repository.ProductStore, opts ...ProductAdminOption) *ProductAdminServiceImpl {
	s := &ProductAdminServiceImpl{products: products, guard: NewInFlight()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every product, active or not.
func (s *ProductAdminServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, remote(err)
	}
	return products, nil
}

func (s *ProductAdminServiceImpl) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	p, err := productFromInput(in)
	if err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(OpProduct, "new:"+strings.ToLower(p.Name))
	if err != nil {
		return nil, err
	}
	defer release()

	created, err := s.products.Insert(ctx, &p)
	if err != nil {
		return nil, remote(err)
	}
	s.invalidate()
	log.Info().Str("product_id", created.ID).Str("kind", string(created.Kind)).Msg("product created")
	return created, nil
}

func (s *ProductAdminServiceImpl) Update(ctx context.Context, id string, in ProductInput) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	p, err := productFromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id

	release, err := s.guard.Acquire(OpProduct, id)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := s.products.Update(ctx, &p)
	if err != nil {
		return nil, remote(err)
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	s.invalidate()
	return updated, nil
}

// ToggleStatus flips a product between active and inactive.
func (s *ProductAdminServiceImpl) ToggleStatus(ctx context.Context, id string) (*model.Product, error) {
	if s.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	release, err := s.guard.Acquire(OpProduct, id)
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, remote(err)
	}
	if current == nil {
		return nil, ErrProductNotFound
	}
	updated, err := s.products.SetStatus(ctx, id, !current.Active)
	if err != nil {
		return nil, remote(err)
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	s.invalidate()
	return updated, nil
}

func (s *ProductAdminServiceImpl) Delete(ctx context.Context, id string) error {
	if s.products == nil {
		return ErrRepositoryNotConfigured
	}
	release, err := s.guard.Acquire(OpProduct, id)
	if err != nil {
		return err
	}
	defer release()

	found, err := s.products.Delete(ctx, id)
	if err != nil {
		return remote(err)
	}
	if !found {
		return ErrProductNotFound
	}
	s.invalidate()
	log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductAdminServiceImpl) invalidate() {
	if s.catalog != nil {
		s.catalog.Invalidate()
	}
}

// productFromInput validates in and applies the add-on conventions: add-ons live in the
// "adicional" category, allow one flavor and carry no description, image or size.
func productFromInput(in ProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, ErrProductNameRequired
	}
	if in.Price.IsNegative() {
		return model.Product{}, ErrProductPriceInvalid
	}
	if in.Quantity < 0 {
		return model.Product{}, ErrProductStockInvalid
	}

	p := model.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Quantity:    in.Quantity,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Active:      in.Active,
		Kind:        in.Kind,
		MaxFlavors:  in.MaxFlavors,
		Size:        strings.TrimSpace(in.Size),
	}

	if p.Kind == model.KindAddon {
		cats := make([]string, 0, len(in.AddonCategories))
		for _, c := range in.AddonCategories {
			if c = strings.TrimSpace(c); c != "" {
				cats = append(cats, c)
			}
		}
		if len(cats) == 0 {
			return model.Product{}, ErrAddonCategoriesRequired
		}
		p.AddonCategories = cats
		p.Category = model.AddonCategory
		p.MaxFlavors = 1
		p.Description = ""
		p.ImageURL = ""
		p.Size = ""
		return p, nil
	}

	p.Kind = model.KindNormal
	if p.Category == "" {
		p.Category = repository.DefaultCategory
	}
	if p.MaxFlavors == 0 {
		p.MaxFlavors = 1
	}
	if p.MaxFlavors < model.MinFlavorLimit || p.MaxFlavors > model.MaxFlavorLimit {
		return model.Product{}, ErrFlavorLimitInvalid.With("min", "1").WithMax(model.MaxFlavorLimit)
	}
	return p, nil
}

var _ ProductAdminService = (*ProductAdminServiceImpl)(nil)
