// Package i18n translates user-facing messages for the storefront API.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client sends no supported language.
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the header carrying the client language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Params fills {placeholders} inside a message.
type Params map[string]string

// Translator resolves message keys per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator loaded with the built-in catalogs.
func NewTranslator() *Translator {
	return &Translator{messages: catalogs}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to DefaultLocale and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// TranslateWith translates key and substitutes every {name} placeholder found in params.
func (t *Translator) TranslateWith(key, locale string, params Params) string {
	msg := t.Translate(key, locale)
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Supported reports whether a locale has a catalog.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language header.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if Supported(lang) {
			return lang
		}
	}

	return DefaultLocale
}
