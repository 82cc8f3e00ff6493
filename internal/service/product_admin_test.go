//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invalidationSpy struct {
	CatalogService
	calls int
}

func (s *invalidationSpy) Invalidate() { s.calls++ }

func TestProductFromInput(t *testing.T) {
	tests := []struct {
		name    string
		in      ProductInput
		wantErr error
		check   func(*testing.T, model.Product)
	}{
		{
			name:    "name required",
			in:      ProductInput{Name: "  ", Price: price("1")},
			wantErr: ErrProductNameRequired,
		},
		{
			name:    "negative price",
			in:      ProductInput{Name: "X", Price: price("-1")},
			wantErr: ErrProductPriceInvalid,
		},
		{
			name:    "negative stock",
			in:      ProductInput{Name: "X", Price: price("1"), Quantity: -2},
			wantErr: ErrProductStockInvalid,
		},
		{
			name:    "flavor limit above range",
			in:      ProductInput{Name: "X", Price: price("1"), MaxFlavors: 11},
			wantErr: ErrFlavorLimitInvalid,
		},
		{
			name:    "add-on without categories",
			in:      ProductInput{Name: "Bacon", Price: price("4"), Kind: model.KindAddon, AddonCategories: []string{" "}},
			wantErr: ErrAddonCategoriesRequired,
		},
		{
			name: "normal product defaults",
			in:   ProductInput{Name: " Pizza ", Price: price("40"), Quantity: 3},
			check: func(t *testing.T, p model.Product) {
				assert.Equal(t, "Pizza", p.Name)
				assert.Equal(t, model.KindNormal, p.Kind)
				assert.Equal(t, "outro", p.Category)
				assert.Equal(t, 1, p.MaxFlavors)
			},
		},
		{
			name: "add-on conventions",
			in: ProductInput{
				Name: "Bacon", Price: price("4"), Kind: model.KindAddon, Category: "comida",
				Description: "crocante", Size: "grande", MaxFlavors: 4, AddonCategories: []string{"comida", ""},
			},
			check: func(t *testing.T, p model.Product) {
				assert.Equal(t, model.AddonCategory, p.Category)
				assert.Equal(t, 1, p.MaxFlavors)
				assert.Empty(t, p.Description)
				assert.Empty(t, p.Size)
				assert.Equal(t, []string{"comida"}, p.AddonCategories)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := productFromInput(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestProductAdminService_CreateInvalidatesCatalog(t *testing.T) {
	store := new(mocks.MockProductStore)
	spy := &invalidationSpy{}
	svc := NewProductAdminService(store, WithCatalogInvalidation(spy))

	store.On("Insert", mock.Anything, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Product).ID = "new-id"
		}).
		Return(&model.Product{ID: "new-id", Name: "Pizza"}, nil)

	created, err := svc.Create(context.Background(), ProductInput{Name: "Pizza", Price: price("40")})

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, 1, spy.calls)
}

func TestProductAdminService_ToggleStatus(t *testing.T) {
	store := new(mocks.MockProductStore)
	current := product("1", "Pizza", "40", 3)
	store.On("FindByID", mock.Anything, "1").Return(&current, nil)
	store.On("SetStatus", mock.Anything, "1", false).Return(&model.Product{ID: "1", Active: false}, nil)
	store.On("FindByID", mock.Anything, "2").Return(nil, nil)

	svc := NewProductAdminService(store)

	got, err := svc.ToggleStatus(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, got.Active)

	_, err = svc.ToggleStatus(context.Background(), "2")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductAdminService_UpdateAndDelete(t *testing.T) {
	store := new(mocks.MockProductStore)
	store.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool { return p.ID == "1" })).
		Return(&model.Product{ID: "1", Name: "Pizza"}, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Product) bool { return p.ID == "2" })).
		Return(nil, nil)
	store.On("Delete", mock.Anything, "1").Return(true, nil)
	store.On("Delete", mock.Anything, "2").Return(false, nil)

	svc := NewProductAdminService(store)
	ctx := context.Background()

	_, err := svc.Update(ctx, "1", ProductInput{Name: "Pizza", Price: price("40")})
	assert.NoError(t, err)
	_, err = svc.Update(ctx, "2", ProductInput{Name: "Pizza", Price: price("40")})
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, svc.Delete(ctx, "1"))
	assert.ErrorIs(t, svc.Delete(ctx, "2"), ErrProductNotFound)
}

func TestProductAdminService_InFlightRejected(t *testing.T) {
	guard := NewInFlight()
	svc := NewProductAdminService(new(mocks.MockProductStore), WithProductGuard(guard))

	release, err := guard.Acquire(OpProduct, "1")
	require.NoError(t, err)
	defer release()

	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), ErrOperationInFlight)
}
