//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockedServices struct {
	catalog    *mockCatalogService
	selections *mockSelectionService
	carts      *mockCartService
	checkout   *mockCheckoutService
	admin      *mockProductAdminService
	settings   *mockSettingsService
}

func newMockedRouter(t *testing.T) (*gin.Engine, *mockedServices) {
	t.Helper()
	return newMockedRouterWith(t, RouterConfig{})
}

// newMockedRouterWith builds a router from cfg with every service replaced by a mock.
func newMockedRouterWith(t *testing.T, cfg RouterConfig) (*gin.Engine, *mockedServices) {
	t.Helper()
	m := &mockedServices{
		catalog:    &mockCatalogService{},
		selections: &mockSelectionService{},
		carts:      &mockCartService{},
		checkout:   &mockCheckoutService{},
		admin:      &mockProductAdminService{},
		settings:   &mockSettingsService{},
	}
	t.Cleanup(func() {
		m.catalog.AssertExpectations(t)
		m.selections.AssertExpectations(t)
		m.carts.AssertExpectations(t)
		m.checkout.AssertExpectations(t)
		m.admin.AssertExpectations(t)
		m.settings.AssertExpectations(t)
	})

	cfg.Catalog = m.catalog
	cfg.Selections = m.selections
	cfg.Carts = m.carts
	cfg.Checkout = m.checkout
	cfg.ProductAdmin = m.admin
	cfg.Settings = m.settings
	return NewRouter(NewHealthHandler(), cfg), m
}

func perform(router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func calabresa() model.Product {
	return model.Product{
		ID: "1", Name: "Pizza Calabresa", Price: price("30"), Quantity: 10,
		Category: "comida", Active: true, Kind: model.KindNormal, MaxFlavors: 2, Size: "Grande",
	}
}

func frango() model.Product {
	return model.Product{
		ID: "2", Name: "Pizza Frango", Price: price("45"), Quantity: 10,
		Category: "comida", Active: true, Kind: model.KindNormal, MaxFlavors: 2, Size: "Grande",
	}
}

func bacon() model.Product {
	return model.Product{
		ID: "9", Name: "Bacon", Price: price("4"), Quantity: 20,
		Category: model.AddonCategory, Active: true, Kind: model.KindAddon, MaxFlavors: 1,
		AddonCategories: []string{"comida"},
	}
}
