package service

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultCategoryIcon is used when no keyword of the category name is known.
const DefaultCategoryIcon = "📦"

// categoryIcons maps keywords found in a category name to an icon. Order matters: the first
// keyword contained in the name wins.
var categoryIcons = []struct {
	keyword string
	icon    string
}{
	{"pizza", "🍕"},
	{"hamburguer", "🍔"},
	{"lanche", "🍔"},
	{"sanduíche", "🥪"},
	{"bebida", "🥤"},
	{"refrigerante", "🥤"},
	{"suco", "🧃"},
	{"cerveja", "🍺"},
	{"vinho", "🍷"},
	{"sobremesa", "🍰"},
	{"doce", "🍬"},
	{"sorvete", "🍦"},
	{"bolo", "🎂"},
	{"café", "☕"},
	{"chá", "🫖"},
	{"salada", "🥗"},
	{"fruta", "🍎"},
	{"vegetariano", "🥬"},
	{"massa", "🍝"},
	{"carne", "🥩"},
	{"peixe", "🐟"},
	{"frango", "🍗"},
	{"vegetais", "🥦"},
	{"arroz", "🍚"},
	{"feijão", "🥘"},
	{"sopa", "🍲"},
	{"queijo", "🧀"},
	{"ovo", "🥚"},
	{"pão", "🥖"},
}

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugDashes     = regexp.MustCompile(`-+`)
)

// Slug turns a display name into an id: accents stripped, lower-case, only letters, digits and
// single dashes.
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		plain = strings.ToLower(name)
	}
	plain = slugDisallowed.ReplaceAllString(plain, "")
	plain = slugSpaces.ReplaceAllString(strings.TrimSpace(plain), "-")
	return slugDashes.ReplaceAllString(plain, "-")
}

// CategoryIcon picks an icon from the keywords contained in name.
func CategoryIcon(name string) string {
	lower := strings.ToLower(name)
	for _, e := range categoryIcons {
		if strings.Contains(lower, e.keyword) {
			return e.icon
		}
	}
	return DefaultCategoryIcon
}

// SettingsService manages the store settings panel.
type SettingsService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	AddCategory(ctx context.Context, name string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id, name, icon string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	RestoreDefaultCategories(ctx context.Context) ([]model.Category, error)

	Sizes(ctx context.Context) ([]model.SizeOption, error)
	AddSize(ctx context.Context, name string) (*model.SizeOption, error)
	RenameSize(ctx context.Context, id, name string) (*model.SizeOption, error)
	DeleteSize(ctx context.Context, id string) error
	RestoreDefaultSizes(ctx context.Context) ([]model.SizeOption, error)

	FlavorConfig(ctx context.Context) (model.FlavorConfig, error)
	SetMaxFlavors(ctx context.Context, max int) (model.FlavorConfig, error)
	RestoreDefaultFlavorConfig(ctx context.Context) (model.FlavorConfig, error)
}

// SettingsServiceImpl implements SettingsService. Writes are serialized so read-modify-write
// of a settings list never loses an update within the process.
type SettingsServiceImpl struct {
	store repository.SettingsStore
	mu    sync.Mutex
	now   func() time.Time
}

// NewSettingsService creates a settings service.
func NewSettingsService(store repository.SettingsStore) *SettingsServiceImpl {
	return &SettingsServiceImpl{store: store, now: time.Now}
}

// Categories returns the saved categories, or the defaults when none were saved.
func (s *SettingsServiceImpl) Categories(ctx context.Context) ([]model.Category, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	cats, err := s.store.Categories(ctx)
	if err != nil {
		return nil, remote(err)
	}
	if cats == nil {
		return model.DefaultCategories(), nil
	}
	return cats, nil
}

func (s *SettingsServiceImpl) AddCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	id := Slug(name)
	if name == "" || id == "" {
		return nil, ErrCategoryNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) || c.ID == id {
			return nil, ErrCategoryExists.WithItem(name)
		}
	}

	cat := model.Category{ID: id, Name: name, Icon: CategoryIcon(name)}
	if err := s.saveCategories(ctx, append(cats, cat)); err != nil {
		return nil, err
	}
	log.Info().Str("category_id", id).Msg("category added")
	return &cat, nil
}

// UpdateCategory renames a category. An empty icon keeps the current one. The id never changes.
func (s *SettingsServiceImpl) UpdateCategory(ctx context.Context, id, name, icon string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, c := range cats {
		if c.ID == id {
			idx = i
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return nil, ErrCategoryExists.WithItem(name)
		}
	}
	if idx < 0 {
		return nil, ErrCategoryNotFound
	}

	cats[idx].Name = name
	if icon = strings.TrimSpace(icon); icon != "" {
		cats[idx].Icon = icon
	}
	if err := s.saveCategories(ctx, cats); err != nil {
		return nil, err
	}
	cat := cats[idx]
	return &cat, nil
}

func (s *SettingsServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Category, 0, len(cats))
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cats) {
		return ErrCategoryNotFound
	}
	return s.saveCategories(ctx, kept)
}

func (s *SettingsServiceImpl) RestoreDefaultCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := model.DefaultCategories()
	if err := s.saveCategories(ctx, cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// Sizes returns the saved size labels, or the defaults when none were saved.
func (s *SettingsServiceImpl) Sizes(ctx context.Context) ([]model.SizeOption, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	sizes, err := s.store.Sizes(ctx)
	if err != nil {
		return nil, remote(err)
	}
	if sizes == nil {
		return model.DefaultSizes(), nil
	}
	return sizes, nil
}

func (s *SettingsServiceImpl) AddSize(ctx context.Context, name string) (*model.SizeOption, error) {
	name = strings.TrimSpace(name)
	id := Slug(name)
	if name == "" || id == "" {
		return nil, ErrSizeNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sizes, err := s.Sizes(ctx)
	if err != nil {
		return nil, err
	}
	for _, sz := range sizes {
		if strings.EqualFold(sz.Name, name) || sz.ID == id {
			return nil, ErrSizeExists.WithItem(name)
		}
	}

	size := model.SizeOption{ID: id, Name: name}
	if err := s.saveSizes(ctx, append(sizes, size)); err != nil {
		return nil, err
	}
	return &size, nil
}

func (s *SettingsServiceImpl) RenameSize(ctx context.Context, id, name string) (*model.SizeOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrSizeNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sizes, err := s.Sizes(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, sz := range sizes {
		if sz.ID == id {
			idx = i
			continue
		}
		if strings.EqualFold(sz.Name, name) {
			return nil, ErrSizeExists.WithItem(name)
		}
	}
	if idx < 0 {
		return nil, ErrSizeNotFound
	}

	sizes[idx].Name = name
	if err := s.saveSizes(ctx, sizes); err != nil {
		return nil, err
	}
	size := sizes[idx]
	return &size, nil
}

func (s *SettingsServiceImpl) DeleteSize(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes, err := s.Sizes(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.SizeOption, 0, len(sizes))
	for _, sz := range sizes {
		if sz.ID != id {
			kept = append(kept, sz)
		}
	}
	if len(kept) == len(sizes) {
		return ErrSizeNotFound
	}
	return s.saveSizes(ctx, kept)
}

func (s *SettingsServiceImpl) RestoreDefaultSizes(ctx context.Context) ([]model.SizeOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes := model.DefaultSizes()
	if err := s.saveSizes(ctx, sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// FlavorConfig returns the saved flavor limit, or the default of 2.
func (s *SettingsServiceImpl) FlavorConfig(ctx context.Context) (model.FlavorConfig, error) {
	if s.store == nil {
		return model.FlavorConfig{}, ErrRepositoryNotConfigured
	}
	cfg, err := s.store.FlavorConfig(ctx)
	if err != nil {
		return model.FlavorConfig{}, remote(err)
	}
	if cfg == nil {
		return model.DefaultFlavorConfig(), nil
	}
	return *cfg, nil
}

// SetMaxFlavors stores a new limit within 1..10.
func (s *SettingsServiceImpl) SetMaxFlavors(ctx context.Context, max int) (model.FlavorConfig, error) {
	if max < model.MinFlavorLimit || max > model.MaxFlavorLimit {
		return model.FlavorConfig{}, ErrFlavorLimitInvalid.
			With("min", "1").
			WithMax(model.MaxFlavorLimit)
	}
	return s.saveFlavorConfig(ctx, model.FlavorConfig{MaxFlavors: max})
}

func (s *SettingsServiceImpl) RestoreDefaultFlavorConfig(ctx context.Context) (model.FlavorConfig, error) {
	return s.saveFlavorConfig(ctx, model.DefaultFlavorConfig())
}

func (s *SettingsServiceImpl) saveFlavorConfig(ctx context.Context, cfg model.FlavorConfig) (model.FlavorConfig, error) {
	if s.store == nil {
		return model.FlavorConfig{}, ErrRepositoryNotConfigured
	}
	cfg.UpdatedAt = s.now().UTC()
	if err := s.store.SaveFlavorConfig(ctx, cfg); err != nil {
		return model.FlavorConfig{}, remote(err)
	}
	log.Info().Int("max_flavors", cfg.MaxFlavors).Msg("flavor limit updated")
	return cfg, nil
}

func (s *SettingsServiceImpl) saveCategories(ctx context.Context, cats []model.Category) error {
	if s.store == nil {
		return ErrRepositoryNotConfigured
	}
	return remote(s.store.SaveCategories(ctx, cats))
}

func (s *SettingsServiceImpl) saveSizes(ctx context.Context, sizes []model.SizeOption) error {
	if s.store == nil {
		return ErrRepositoryNotConfigured
	}
	return remote(s.store.SaveSizes(ctx, sizes))
}

var _ SettingsService = (*SettingsServiceImpl)(nil)
