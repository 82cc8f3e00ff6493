//go:build !integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStore_VersionCheck(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartStore()

	missing, err := store.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	cart := &model.Cart{ID: "c1"}
	require.NoError(t, store.Save(ctx, cart))
	assert.Equal(t, int64(1), cart.Version)
	assert.False(t, cart.CreatedAt.IsZero())

	t.Run("second insert conflicts", func(t *testing.T) {
		err := store.Save(ctx, &model.Cart{ID: "c1"})
		assert.ErrorIs(t, err, ErrCartVersionConflict)
	})

	t.Run("stale writer loses", func(t *testing.T) {
		a, err := store.Load(ctx, "c1")
		require.NoError(t, err)
		b, err := store.Load(ctx, "c1")
		require.NoError(t, err)

		a.Items = append(a.Items, model.LineItem{ID: "x", Quantity: 1})
		require.NoError(t, store.Save(ctx, a))

		b.Items = append(b.Items, model.LineItem{ID: "y", Quantity: 1})
		assert.ErrorIs(t, store.Save(ctx, b), ErrCartVersionConflict)

		stored, err := store.Load(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, "x", stored.Items[0].ID)
		assert.Equal(t, int64(2), stored.Version)
	})

	t.Run("update of unknown cart conflicts", func(t *testing.T) {
		err := store.Save(ctx, &model.Cart{ID: "ghost", Version: 4})
		assert.ErrorIs(t, err, ErrCartVersionConflict)
	})

	t.Run("loaded copies are isolated", func(t *testing.T) {
		c, _ := store.Load(ctx, "c1")
		c.Items[0].Quantity = 50
		again, _ := store.Load(ctx, "c1")
		assert.Equal(t, 1, again.Items[0].Quantity)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "c1"))
		c, err := store.Load(ctx, "c1")
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestMemorySettingsStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySettingsStore()

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Nil(t, categories)
	sizes, err := store.Sizes(ctx)
	require.NoError(t, err)
	assert.Nil(t, sizes)
	cfg, err := store.FlavorConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	require.NoError(t, store.SaveCategories(ctx, model.DefaultCategories()))
	require.NoError(t, store.SaveSizes(ctx, []model.SizeOption{}))
	require.NoError(t, store.SaveFlavorConfig(ctx, model.FlavorConfig{MaxFlavors: 4}))

	categories, _ = store.Categories(ctx)
	assert.Equal(t, model.DefaultCategories(), categories)

	sizes, _ = store.Sizes(ctx)
	assert.NotNil(t, sizes)
	assert.Empty(t, sizes)

	cfg, _ = store.FlavorConfig(ctx)
	require.NotNil(t, cfg)
	assert.Equal(t, 4, cfg.MaxFlavors)
}

func TestMemoryProductStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProductStore(
		model.Product{ID: "2", Name: "Pizza Frango", Category: "comida", Active: true, Kind: model.KindNormal},
		model.Product{ID: "1", Name: "Pizza Calabresa", Category: "comida", Active: true, Kind: model.KindNormal},
		model.Product{ID: "3", Name: "Suco", Category: "bebida", Active: true, Kind: model.KindNormal},
		model.Product{ID: "4", Name: "Bacon", Category: model.AddonCategory, Active: true, Kind: model.KindAddon},
		model.Product{ID: "5", Name: "Antiga", Category: "comida", Active: false, Kind: model.KindNormal},
	)

	ids := func(products []model.Product) []string {
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.ID)
		}
		return out
	}

	active, err := store.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(active))

	candidates, err := store.FindFlavorCandidates(ctx, model.Product{ID: "1", Category: "comida"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(candidates))

	addons, err := store.FindActiveAddons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, ids(addons))

	byIDs, err := store.FindByIDs(ctx, []string{"3", "missing", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(byIDs))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemoryProductStore_Writes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProductStore()

	created, err := store.Insert(ctx, &model.Product{Name: "Pizza", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	off, err := store.SetStatus(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	store.SetQuantity(created.ID, 7)
	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	missing, err := store.Update(ctx, &model.Product{ID: "nope"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryOrderStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	require.NoError(t, store.Insert(ctx, &model.Order{ID: "PED1", CartID: "c1"}))
	require.NoError(t, store.Insert(ctx, &model.Order{ID: "PED2", CartID: "c2"}))
	require.NoError(t, store.Insert(ctx, &model.Order{ID: "PED3", CartID: "c1"}))

	orders, err := store.ListByCart(ctx, "c1", 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "PED3", orders[0].ID)

	limited, err := store.ListByCart(ctx, "c1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, store.Delete(ctx, "PED3"))
	found, err := store.FindByID(ctx, "PED3")
	require.NoError(t, err)
	assert.Nil(t, found)
}
