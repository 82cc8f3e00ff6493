//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/mocks"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func lineItem(id string, qty, max int) model.LineItem {
	return model.LineItem{
		ID:          id,
		ProductID:   id,
		Name:        "Produto " + id,
		UnitPrice:   price("10.00"),
		Quantity:    qty,
		MaxQuantity: max,
		Addons:      []model.AddonSnapshot{},
	}
}

func newCartFixture(t *testing.T, items ...model.LineItem) (*CartServiceImpl, *repository.MemoryCartStore, string) {
	t.Helper()
	store := repository.NewMemoryCartStore()
	svc := NewCartService(store, WithCartIDGenerator(func() string { return "cart-1" }))
	cart, err := svc.Create(context.Background())
	require.NoError(t, err)
	if len(items) > 0 {
		cart.Items = items
		require.NoError(t, store.Save(context.Background(), cart))
	}
	return svc, store, cart.ID
}

func TestCartService_Create(t *testing.T) {
	svc, store, id := newCartFixture(t)

	assert.Equal(t, "cart-1", id)
	cart, err := store.Load(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(1), cart.Version)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestCartService_GetUnknown(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_Add(t *testing.T) {
	bacon := model.AddonSnapshot{ID: "a1", Name: "Bacon", Price: price("4")}

	tests := []struct {
		name        string
		existing    []model.LineItem
		item        func() model.LineItem
		wantOutcome AddOutcome
		wantErr     error
		wantQty     []int
	}{
		{
			name:        "appends to an empty cart",
			item:        func() model.LineItem { return lineItem("1", 1, 5) },
			wantOutcome: AddAppended,
			wantQty:     []int{1},
		},
		{
			name:        "merges an equal entry",
			existing:    []model.LineItem{lineItem("1", 2, 5)},
			item:        func() model.LineItem { return lineItem("1", 1, 5) },
			wantOutcome: AddMerged,
			wantQty:     []int{3},
		},
		{
			name:     "different note appends",
			existing: []model.LineItem{lineItem("1", 2, 5)},
			item: func() model.LineItem {
				li := lineItem("1", 1, 5)
				li.Notes = "Pouco sal"
				return li
			},
			wantOutcome: AddAppended,
			wantQty:     []int{2, 1},
		},
		{
			name:     "different add-ons append",
			existing: []model.LineItem{lineItem("1", 2, 5)},
			item: func() model.LineItem {
				li := lineItem("1", 1, 5)
				li.Addons = []model.AddonSnapshot{bacon}
				return li
			},
			wantOutcome: AddAppended,
			wantQty:     []int{2, 1},
		},
		{
			name:     "merge past the limit is rejected",
			existing: []model.LineItem{lineItem("1", 5, 5)},
			item:     func() model.LineItem { return lineItem("1", 1, 5) },
			wantErr:  ErrStockExceeded,
			wantQty:  []int{5},
		},
		{
			name:     "merge uses the fresh limit",
			existing: []model.LineItem{lineItem("1", 2, 9)},
			item:     func() model.LineItem { return lineItem("1", 1, 2) },
			wantErr:  ErrStockExceeded,
			wantQty:  []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, id := newCartFixture(t, tt.existing...)

			_, outcome, err := svc.Add(context.Background(), id, tt.item())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutcome, outcome)
			}

			cart, err := store.Load(context.Background(), id)
			require.NoError(t, err)
			qty := make([]int, len(cart.Items))
			for i, it := range cart.Items {
				qty[i] = it.Quantity
			}
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestCartService_AddMergeRefreshesLimit(t *testing.T) {
	svc, _, id := newCartFixture(t, lineItem("1", 1, 9))

	cart, outcome, err := svc.Add(context.Background(), id, lineItem("1", 1, 4))

	require.NoError(t, err)
	assert.Equal(t, AddMerged, outcome)
	assert.Equal(t, 4, cart.Items[0].MaxQuantity)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartService_AddUnknownCart(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	_, _, err := svc.Add(context.Background(), "missing", lineItem("1", 1, 5))
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCartService_Increment(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.LineItem
		index   int
		delta   int
		wantErr error
		wantQty []int
	}{
		{"increments", []model.LineItem{lineItem("1", 1, 3)}, 0, 1, nil, []int{2}},
		{"decrements", []model.LineItem{lineItem("1", 2, 3)}, 0, -1, nil, []int{1}},
		{"below one removes", []model.LineItem{lineItem("1", 1, 3), lineItem("2", 1, 3)}, 0, -1, nil, []int{1}},
		{"past the limit", []model.LineItem{lineItem("1", 3, 3)}, 0, 1, ErrStockExceeded, []int{3}},
		{"legacy line uses default cap", []model.LineItem{lineItem("1", 98, 0)}, 0, 1, nil, []int{99}},
		{"legacy line at default cap", []model.LineItem{lineItem("1", 99, 0)}, 0, 1, ErrStockExceeded, []int{99}},
		{"bad index", []model.LineItem{lineItem("1", 1, 3)}, 4, 1, ErrCartItemNotFound, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, id := newCartFixture(t, tt.items...)

			_, err := svc.Increment(context.Background(), id, tt.index, tt.delta)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			cart, _ := store.Load(context.Background(), id)
			qty := make([]int, len(cart.Items))
			for i, it := range cart.Items {
				qty[i] = it.Quantity
			}
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestCartService_RemoveAndClear(t *testing.T) {
	svc, _, id := newCartFixture(t, lineItem("1", 1, 3), lineItem("2", 2, 3), lineItem("3", 1, 3))

	cart, err := svc.Remove(context.Background(), id, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, "1", cart.Items[0].ID)
	assert.Equal(t, "3", cart.Items[1].ID)

	_, err = svc.Remove(context.Background(), id, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	cart, err = svc.Clear(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_ClearThenAdd(t *testing.T) {
	ctx := context.Background()
	svc, store, id := newCartFixture(t, lineItem("1", 2, 5), lineItem("2", 3, 5), lineItem("3", 1, 5))

	cleared, err := svc.Clear(ctx, id)
	require.NoError(t, err)
	require.Empty(t, cleared.Items)

	cart, outcome, err := svc.Add(ctx, id, lineItem("2", 1, 5))
	require.NoError(t, err)
	assert.Equal(t, AddAppended, outcome)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].ID)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	stored, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, 1, svc.Totals(stored).ItemCount)
}

func TestCartService_Totals(t *testing.T) {
	svc := NewCartService(repository.NewMemoryCartStore())
	a := lineItem("1", 2, 5)
	a.UnitPrice = price("12.50")
	b := lineItem("2", 1, 5)
	b.UnitPrice = price("7.25")

	totals := svc.Totals(&model.Cart{Items: []model.LineItem{a, b}})

	assert.Equal(t, 3, totals.ItemCount)
	assert.True(t, totals.Subtotal.Equal(price("32.25")))
	assert.True(t, totals.DeliveryFee.Equal(price("5.00")))
	assert.True(t, totals.Total.Equal(price("37.25")))
}

func TestCartService_ConflictIsReported(t *testing.T) {
	store := new(mocks.MockCartStore)
	store.On("Load", mock.Anything, "c1").Return(&model.Cart{ID: "c1", Version: 3, Items: []model.LineItem{}}, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(repository.ErrCartVersionConflict)

	svc := NewCartService(store)
	_, _, err := svc.Add(context.Background(), "c1", lineItem("1", 1, 5))

	assert.ErrorIs(t, err, ErrCartConflict)
	assert.ErrorIs(t, err, repository.ErrCartVersionConflict)
	store.AssertExpectations(t)
}

func TestCartService_StoreFailureIsRemote(t *testing.T) {
	store := new(mocks.MockCartStore)
	store.On("Load", mock.Anything, "c1").Return(nil, errors.New("connection reset"))

	svc := NewCartService(store)
	_, err := svc.Increment(context.Background(), "c1", 0, 1)

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindRemoteFailure, de.Kind)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_InFlightRejected(t *testing.T) {
	guard := NewInFlight()
	svc, _, id := newCartFixture(t, lineItem("1", 1, 3))
	svc.guard = guard

	release, err := guard.Acquire(OpCart, id)
	require.NoError(t, err)
	defer release()

	_, err = svc.Increment(context.Background(), id, 0, 1)
	assert.ErrorIs(t, err, ErrOperationInFlight)
}

func TestCartService_NotConfigured(t *testing.T) {
	svc := NewCartService(nil)
	_, err := svc.Create(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
