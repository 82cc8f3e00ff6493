//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/mocks"
	"github.com/guttosm/cardapio-service/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*CatalogServiceImpl, *mocks.MockProductStore) {
	t.Helper()
	store := new(mocks.MockProductStore)
	listings := cache.NewSharded[[]model.Product]("catalog_test", 16, time.Minute, 1)
	t.Cleanup(listings.Stop)
	return NewCatalogService(store, WithCatalogCache(listings)), store
}

func catalogRows() []model.Product {
	calabresa := pizza("1", "Pizza Calabresa", "40", 5, 2)
	calabresa.Size = "grande"
	calabresa.Description = "Linguiça e cebola"
	suco := product("2", "Suco de Laranja", "8", 3)
	suco.Category = "bebida"
	suco.Size = "500ml"
	brotinho := product("3", "Pizza Brotinho", "25", 2)
	brotinho.Size = "pequeno"
	return []model.Product{brotinho, calabresa, suco}
}

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{"no filter", ProductFilter{}, []string{"3", "1", "2"}},
		{"category", ProductFilter{Category: "comida"}, []string{"3", "1"}},
		{"category case-insensitive", ProductFilter{Category: "BEBIDA"}, []string{"2"}},
		{"size", ProductFilter{Size: "grande"}, []string{"1"}},
		{"search name", ProductFilter{Search: "laranja"}, []string{"2"}},
		{"search description", ProductFilter{Search: "CEBOLA"}, []string{"1"}},
		{"no match", ProductFilter{Search: "sushi"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newCatalogFixture(t)
			store.On("FindActive", mock.Anything).Return(catalogRows(), nil)

			got, err := svc.ListProducts(context.Background(), tt.filter)

			require.NoError(t, err)
			ids := []string{}
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogService_ListingIsCachedUntilInvalidated(t *testing.T) {
	svc, store := newCatalogFixture(t)
	store.On("FindActive", mock.Anything).Return(catalogRows(), nil)
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	_, err = svc.Categories(ctx)
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "FindActive", 1)

	svc.Invalidate()
	_, err = svc.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	store.AssertNumberOfCalls(t, "FindActive", 2)
}

func TestCatalogService_CategoriesAndSizes(t *testing.T) {
	svc, store := newCatalogFixture(t)
	store.On("FindActive", mock.Anything).Return(catalogRows(), nil)
	ctx := context.Background()

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bebida", "comida"}, cats)

	sizes, err := svc.Sizes(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"500ml", "grande", "pequeno"}, sizes)

	sizes, err = svc.Sizes(ctx, "comida")
	require.NoError(t, err)
	assert.Equal(t, []string{"grande", "pequeno"}, sizes)
}

func TestCatalogService_HasAddons(t *testing.T) {
	svc, store := newCatalogFixture(t)
	store.On("FindActiveAddons", mock.Anything).Return([]model.Product{
		addon("a1", "Calda", "2", 4, "sobremesa"),
		addon("a2", "Gelo", "0", 0),
	}, nil)
	ctx := context.Background()

	has, err := svc.HasAddons(ctx, model.Product{Category: "sobremesa"})
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasAddons(ctx, model.Product{Category: "bebida"})
	require.NoError(t, err)
	assert.False(t, has, "sold out add-ons do not count")
}

func TestCatalogService_Product(t *testing.T) {
	svc, store := newCatalogFixture(t)
	p := product("1", "Pizza", "40", 1)
	store.On("FindByID", mock.Anything, "1").Return(&p, nil)
	store.On("FindByID", mock.Anything, "2").Return(nil, nil)
	store.On("FindByID", mock.Anything, "3").Return(nil, errors.New("boom"))

	got, err := svc.Product(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)

	_, err = svc.Product(context.Background(), "2")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.Product(context.Background(), "3")
	assert.ErrorIs(t, err, ErrRemoteFailure)
}

func TestCatalogService_StoreFailureIsNotCached(t *testing.T) {
	svc, store := newCatalogFixture(t)
	store.On("FindActive", mock.Anything).Return(nil, errors.New("down")).Once()
	store.On("FindActive", mock.Anything).Return(catalogRows(), nil).Once()

	_, err := svc.ListProducts(context.Background(), ProductFilter{})
	assert.ErrorIs(t, err, ErrRemoteFailure)

	got, err := svc.ListProducts(context.Background(), ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
