//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storefront wires the real services over in-memory stores.
func storefront(t *testing.T) (*gin.Engine, *repository.MemoryProductStore) {
	t.Helper()
	products := repository.NewMemoryProductStore(calabresa(), frango(), bacon())
	carts := repository.NewMemoryCartStore()
	orders := repository.NewMemoryOrderStore()
	guard := service.NewInFlight()

	catalog := service.NewCatalogService(products)
	cartService := service.NewCartService(carts, service.WithCartGuard(guard))
	router := NewRouter(NewHealthHandler(), RouterConfig{
		Catalog:      catalog,
		Selections:   service.NewSelectionService(products, cartService, service.WithSelectionGuard(guard)),
		Carts:        cartService,
		Checkout:     service.NewCheckoutService(carts, orders, products, service.WithCheckoutGuard(guard)),
		ProductAdmin: service.NewProductAdminService(products, service.WithCatalogInvalidation(catalog)),
		Settings:     service.NewSettingsService(repository.NewMemorySettingsStore()),
	})
	return router, products
}

// composeHalfAndHalf builds a calabresa/frango pizza with bacon and adds it to cartID.
func composeHalfAndHalf(t *testing.T, router *gin.Engine, cartID string) dto.AddToCartResponse {
	t.Helper()

	w := perform(router, http.MethodPost, "/api/v1/selections", `{"produto_id":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sel dto.SelectionResponse
	decodeData(t, w, &sel)
	require.True(t, sel.FlavorMode)
	require.Len(t, sel.Flavors, 1)

	w = perform(router, http.MethodPost, "/api/v1/selections/"+sel.ID+"/flavors", `{"produto_id":"2"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = perform(router, http.MethodPut, "/api/v1/selections/"+sel.ID+"/addons/9", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeData(t, w, &sel)
	assert.Equal(t, "37.50", sel.Summary.ComposedPrice)
	assert.Equal(t, "41.50", sel.Summary.UnitPrice)

	body := ""
	if cartID != "" {
		body = `{"carrinho_id":"` + cartID + `"}`
	}
	w = perform(router, http.MethodPost, "/api/v1/selections/"+sel.ID+"/cart", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var added dto.AddToCartResponse
	decodeData(t, w, &added)

	w = perform(router, http.MethodGet, "/api/v1/selections/"+sel.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code, "session ends once the line is in the cart")
	return added
}

func TestStorefrontFlow_ComposeMergeAndCheckout(t *testing.T) {
	router, _ := storefront(t)

	first := composeHalfAndHalf(t, router, "")
	require.NotEmpty(t, first.Cart.ID)
	assert.Equal(t, string(service.AddAppended), first.Outcome)
	assert.Equal(t, "Pizza Calabresa (2 sabores)", first.Item.Name)
	assert.Equal(t, "1", first.Item.ProductID)
	assert.True(t, first.Item.Composed)

	second := composeHalfAndHalf(t, router, first.Cart.ID)
	assert.Equal(t, string(service.AddMerged), second.Outcome)
	require.Len(t, second.Cart.Items, 1)
	assert.Equal(t, 2, second.Cart.Items[0].Quantity)
	assert.Equal(t, "83.00", second.Cart.Totals.Subtotal)
	assert.Equal(t, "88.00", second.Cart.Totals.Total)

	w := perform(router, http.MethodPost, "/api/v1/carts/"+first.Cart.ID+"/checkout", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order dto.OrderResponse
	decodeData(t, w, &order)
	assert.Equal(t, "83.00", order.Subtotal)
	assert.Equal(t, "5.00", order.DeliveryFee)
	assert.Equal(t, "88.00", order.Total)
	require.Len(t, order.Items, 1)

	w = perform(router, http.MethodGet, "/api/v1/carts/"+first.Cart.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Items)

	w = perform(router, http.MethodGet, "/api/v1/carts/"+first.Cart.ID+"/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []dto.OrderResponse
	decodeData(t, w, &history)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestStorefrontFlow_CheckoutRejectedWhenStockDrops(t *testing.T) {
	router, products := storefront(t)

	added := composeHalfAndHalf(t, router, "")
	w := perform(router, http.MethodPatch, "/api/v1/carts/"+added.Cart.ID+"/items/0", `{"delta":1}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	products.SetQuantity("2", 1)

	w = perform(router, http.MethodPost, "/api/v1/carts/"+added.Cart.ID+"/checkout", "", "Accept-Language", "en")
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	resp := decodeError(t, w)
	assert.Equal(t, "Some items are no longer available", resp.Message)
	assert.Equal(t, []string{"Pizza Frango: insufficient stock"}, resp.Causes)

	w = perform(router, http.MethodGet, "/api/v1/carts/"+added.Cart.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestStorefrontFlow_AdminChangesReachCatalog(t *testing.T) {
	router, _ := storefront(t)

	w := perform(router, http.MethodGet, "/api/v1/catalog/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	var before []dto.ProductResponse
	decodeData(t, w, &before)

	w = perform(router, http.MethodPatch, "/api/v1/admin/products/2/status", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = perform(router, http.MethodGet, "/api/v1/catalog/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	var after []dto.ProductResponse
	decodeData(t, w, &after)
	assert.Len(t, after, len(before)-1)
	for _, p := range after {
		assert.NotEqual(t, "2", p.ID)
	}
}
