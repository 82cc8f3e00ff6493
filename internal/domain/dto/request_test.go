//go:build !integration

package dto

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindJSON[T any](t *testing.T, body string) (*T, error) {
	t.Helper()
	require.NoError(t, RegisterValidators())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req T
	err := c.ShouldBindJSON(&req)
	return &req, err
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "delta", Message: "must not be zero"}
	assert.Equal(t, "delta: must not be zero", err.Error())
}

func TestUpdateQuantityRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		delta   int
		wantErr error
	}{
		{"increment", 1, nil},
		{"decrement", -1, nil},
		{"zero", 0, ErrDeltaZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := UpdateQuantityRequest{Delta: tt.delta}
			assert.Equal(t, tt.wantErr, r.Validate())
		})
	}
}

func TestProductRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, r *ProductRequest)
	}{
		{
			name: "price as string",
			body: `{"nome":"Pizza Calabresa","preco":"40.00","quantidade":10,"categoria":"comida","max_sabores":2}`,
			check: func(t *testing.T, r *ProductRequest) {
				assert.True(t, r.Price.Equal(decimal.RequireFromString("40")))
				assert.True(t, r.IsActive())
			},
		},
		{
			name: "price as number and explicit inactive",
			body: `{"nome":"Refrigerante","preco":6.5,"quantidade":0,"ativo":false}`,
			check: func(t *testing.T, r *ProductRequest) {
				assert.True(t, r.Price.Equal(decimal.RequireFromString("6.5")))
				assert.False(t, r.IsActive())
			},
		},
		{
			name: "addon with categories",
			body: `{"nome":"Bacon","preco":"4.00","quantidade":5,"tipo":"adicional","categorias_adicionais":["comida","lanches-naturais"]}`,
		},
		{name: "missing name", body: `{"preco":"10"}`, wantErr: true},
		{name: "negative price", body: `{"nome":"X","preco":"-1"}`, wantErr: true},
		{name: "negative stock", body: `{"nome":"X","preco":"1","quantidade":-2}`, wantErr: true},
		{name: "unknown kind", body: `{"nome":"X","preco":"1","tipo":"combo"}`, wantErr: true},
		{name: "flavor limit above range", body: `{"nome":"X","preco":"1","max_sabores":11}`, wantErr: true},
		{name: "category not a slug", body: `{"nome":"X","preco":"1","categoria":"Lanches Naturais"}`, wantErr: true},
		{name: "bad image url", body: `{"nome":"X","preco":"1","imagem_url":"not a url"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := bindJSON[ProductRequest](t, tt.body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, req)
			}
		})
	}
}

func TestNotePresetRequest_Binding(t *testing.T) {
	_, err := bindJSON[NotePresetRequest](t, `{"preset":"sem_cebola"}`)
	assert.NoError(t, err)

	_, err = bindJSON[NotePresetRequest](t, `{"preset":"extra_queijo"}`)
	assert.Error(t, err)
}

func TestFlavorConfigRequest_Binding(t *testing.T) {
	tests := []struct {
		body    string
		wantErr bool
	}{
		{`{"max_sabores":1}`, false},
		{`{"max_sabores":10}`, false},
		{`{"max_sabores":0}`, true},
		{`{"max_sabores":11}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			_, err := bindJSON[FlavorConfigRequest](t, tt.body)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestRegisterValidators_Idempotent(t *testing.T) {
	assert.NoError(t, RegisterValidators())
	assert.NoError(t, RegisterValidators())
}

func TestValidationErrors_UseWireNames(t *testing.T) {
	_, err := bindJSON[ProductRequest](t, `{"preco":"1","quantidade":-1}`)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"nome", "quantidade"}, fields)
}
