//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/i18n"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid request", body: `{"produto_id":"42"}`},
		{name: "invalid JSON", body: `{"produto_id": invalid}`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
		{name: "missing required field", body: `{}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			result, err := BuildRequest[dto.StartSelectionRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "42", result.ProductID)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "increment", body: `{"delta":1}`},
		{name: "decrement", body: `{"delta":-1}`},
		{name: "zero delta", body: `{"delta":0}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)

			result, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, result.Delta)
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := jsonContext("")
	middleware.RequestID()(c)

	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.Empty(t, c.Errors)
}

func TestResponseBuilder_ErrorWithDetail(t *testing.T) {
	c, w := jsonContext("")
	c.Request.Header.Set("Accept-Language", "en")

	NewResponseBuilder(c).ErrorWithDetail(http.StatusConflict, i18n.ErrKeyCheckoutRejected, ErrorDetail{
		Causes: []string{"Bacon: insufficient stock"},
	}, assert.AnError)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, "Some items are no longer available", resp.Message)
	assert.Equal(t, []string{"Bacon: insufficient stock"}, resp.Causes)
	assert.Len(t, c.Errors, 1)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := jsonContext("")

	NewResponseBuilder(c).SuccessCreated(map[string]string{"id": "cart-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var data map[string]string
	decodeData(t, w, &data)
	assert.Equal(t, "cart-1", data["id"])
}

func TestRespondBindError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails map[string]string
	}{
		{name: "malformed body", body: `{"produto_id":`},
		{name: "wrong type", body: `{"produto_id":42}`},
		{name: "missing field", body: `{}`, wantDetails: map[string]string{"produto_id": "required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto.RegisterValidators()
			c, w := jsonContext(tt.body)

			_, err := BuildRequest[dto.StartSelectionRequest](c)
			require.Error(t, err)
			respondBindError(c, err)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantDetails, decodeError(t, w).Details)
		})
	}
}
