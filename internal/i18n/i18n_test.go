//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Same(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "portuguese message", key: ErrKeyCartEmpty, locale: "pt", expected: "Carrinho vazio"},
		{name: "english message", key: ErrKeyCartEmpty, locale: "en", expected: "Cart is empty"},
		{name: "dutch message", key: ErrKeyCartEmpty, locale: "nl", expected: "Winkelwagen is leeg"},
		{name: "empty locale uses default", key: ErrKeyCartEmpty, locale: "", expected: "Carrinho vazio"},
		{name: "unsupported locale falls back", key: ErrKeyCartEmpty, locale: "fr", expected: "Carrinho vazio"},
		{name: "unknown key returns key", key: "unknown.key", locale: "en", expected: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_TranslateWith(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		params   Params
		expected string
	}{
		{
			name:     "item placeholder",
			key:      ErrKeyProductOutOfStock,
			locale:   "pt",
			params:   Params{"item": "Pizza Calabresa"},
			expected: "Pizza Calabresa está esgotado",
		},
		{
			name:     "numeric placeholder",
			key:      ErrKeyStockExceeded,
			locale:   "en",
			params:   Params{"max": "3"},
			expected: "Insufficient stock. Maximum available quantity: 3",
		},
		{
			name:     "several placeholders",
			key:      ErrKeyFlavorLimitInvalid,
			locale:   "en",
			params:   Params{"min": "1", "max": "10"},
			expected: "Flavor limit must be between 1 and 10",
		},
		{
			name:     "no params leaves template",
			key:      ErrKeyFlavorLimitReached,
			locale:   "en",
			expected: "Maximum of {max} flavors reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.TranslateWith(tt.key, tt.locale, tt.params))
		})
	}
}

func TestCatalogs_SameKeys(t *testing.T) {
	for locale, msgs := range catalogs {
		for key := range catalogs[DefaultLocale] {
			_, ok := msgs[key]
			assert.Truef(t, ok, "locale %s misses %s", locale, key)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header returns default", acceptLanguage: "", expected: DefaultLocale},
		{name: "english header", acceptLanguage: "en", expected: "en"},
		{name: "portuguese with region", acceptLanguage: "pt-BR", expected: "pt"},
		{name: "dutch header", acceptLanguage: "nl", expected: "nl"},
		{name: "multiple languages", acceptLanguage: "en-US,en;q=0.9,pt;q=0.8", expected: "en"},
		{name: "first supported wins", acceptLanguage: "fr-FR,nl;q=0.8", expected: "nl"},
		{name: "unsupported language defaults", acceptLanguage: "fr", expected: DefaultLocale},
		{name: "case insensitive", acceptLanguage: "EN", expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
