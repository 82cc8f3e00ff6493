//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_Categories(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(m *mockedServices)
		wantStatus int
	}{
		{
			name: "list", method: http.MethodGet, path: "/api/v1/admin/settings/categories",
			setup: func(m *mockedServices) {
				m.settings.On("Categories", mock.Anything).Return(model.DefaultCategories(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "add", method: http.MethodPost, path: "/api/v1/admin/settings/categories",
			body: `{"nome":"Lanches Naturais"}`,
			setup: func(m *mockedServices) {
				m.settings.On("AddCategory", mock.Anything, "Lanches Naturais").
					Return(&model.Category{ID: "lanches-naturais", Name: "Lanches Naturais", Icon: "🥪"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "add with icon", method: http.MethodPost, path: "/api/v1/admin/settings/categories",
			body: `{"nome":"Massas","icone":"🍝"}`,
			setup: func(m *mockedServices) {
				m.settings.On("AddCategory", mock.Anything, "Massas").
					Return(&model.Category{ID: "massas", Name: "Massas", Icon: "📦"}, nil).Once()
				m.settings.On("UpdateCategory", mock.Anything, "massas", "Massas", "🍝").
					Return(&model.Category{ID: "massas", Name: "Massas", Icon: "🍝"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate", method: http.MethodPost, path: "/api/v1/admin/settings/categories",
			body: `{"nome":"comida"}`,
			setup: func(m *mockedServices) {
				m.settings.On("AddCategory", mock.Anything, "comida").Return(nil, service.ErrCategoryExists).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "empty name", method: http.MethodPost, path: "/api/v1/admin/settings/categories",
			body:       `{"nome":""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "update", method: http.MethodPut, path: "/api/v1/admin/settings/categories/comida",
			body: `{"nome":"Comidas","icone":"🍔"}`,
			setup: func(m *mockedServices) {
				m.settings.On("UpdateCategory", mock.Anything, "comida", "Comidas", "🍔").
					Return(&model.Category{ID: "comida", Name: "Comidas", Icon: "🍔"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "delete unknown", method: http.MethodDelete, path: "/api/v1/admin/settings/categories/nope",
			setup: func(m *mockedServices) {
				m.settings.On("DeleteCategory", mock.Anything, "nope").Return(service.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "restore", method: http.MethodPost, path: "/api/v1/admin/settings/categories/restore",
			setup: func(m *mockedServices) {
				m.settings.On("RestoreDefaultCategories", mock.Anything).Return(model.DefaultCategories(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			w := perform(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSettingsHandler_Sizes(t *testing.T) {
	router, m := newMockedRouter(t)
	m.settings.On("Sizes", mock.Anything).Return(model.DefaultSizes(), nil).Once()
	m.settings.On("AddSize", mock.Anything, "Família").Return(&model.SizeOption{ID: "familia", Name: "Família"}, nil).Once()
	m.settings.On("RenameSize", mock.Anything, "familia", "Gigante").Return(&model.SizeOption{ID: "familia", Name: "Gigante"}, nil).Once()
	m.settings.On("DeleteSize", mock.Anything, "familia").Return(nil).Once()
	m.settings.On("RestoreDefaultSizes", mock.Anything).Return(model.DefaultSizes(), nil).Once()

	var sizes []model.SizeOption
	w := perform(router, http.MethodGet, "/api/v1/admin/settings/sizes", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sizes)
	assert.Len(t, sizes, 5)

	w = perform(router, http.MethodPost, "/api/v1/admin/settings/sizes", `{"nome":"Família"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodPut, "/api/v1/admin/settings/sizes/familia", `{"nome":"Gigante"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var renamed model.SizeOption
	decodeData(t, w, &renamed)
	assert.Equal(t, "Gigante", renamed.Name)

	w = perform(router, http.MethodDelete, "/api/v1/admin/settings/sizes/familia", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(router, http.MethodPost, "/api/v1/admin/settings/sizes/restore", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSettingsHandler_FlavorConfig(t *testing.T) {
	router, m := newMockedRouter(t)
	m.settings.On("FlavorConfig", mock.Anything).Return(model.DefaultFlavorConfig(), nil).Once()
	m.settings.On("SetMaxFlavors", mock.Anything, 3).Return(model.FlavorConfig{MaxFlavors: 3}, nil).Once()
	m.settings.On("RestoreDefaultFlavorConfig", mock.Anything).Return(model.DefaultFlavorConfig(), nil).Once()

	w := perform(router, http.MethodGet, "/api/v1/admin/settings/flavors", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cfg model.FlavorConfig
	decodeData(t, w, &cfg)
	assert.Equal(t, 2, cfg.MaxFlavors)

	w = perform(router, http.MethodPut, "/api/v1/admin/settings/flavors", `{"max_sabores":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cfg)
	assert.Equal(t, 3, cfg.MaxFlavors)

	w = perform(router, http.MethodPut, "/api/v1/admin/settings/flavors", `{"max_sabores":11}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(router, http.MethodPost, "/api/v1/admin/settings/flavors/restore", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
