package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/i18n"
	"github.com/guttosm/cardapio-service/internal/service"
)

// CatalogPath is where a client is sent back to after its session was abandoned.
const CatalogPath = "/api/v1/catalog/products"

// statusForKind maps a rejection kind to its HTTP status.
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindOutOfStock, service.KindStockExceeded, service.KindConflict:
		return http.StatusConflict
	case service.KindNotFound, service.KindMissingReference, service.KindInvalidSession:
		return http.StatusNotFound
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindRemoteFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope for an error returned by a service.
func respondError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	switch {
	case errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
		return
	}

	de, ok := service.AsDomainError(err)
	if !ok {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	status := statusForKind(de.Kind)
	detail := ErrorDetail{Params: de.Params}
	if errors.Is(err, service.ErrSessionAbandoned) {
		status = http.StatusGone
		detail.Redirect = CatalogPath
	}
	if len(de.Causes) > 0 {
		locale := i18n.GetLocale(c)
		translator := i18n.GetTranslator()
		detail.Causes = make([]string, 0, len(de.Causes))
		for _, cause := range de.Causes {
			detail.Causes = append(detail.Causes, translator.TranslateWith(cause.Key, locale, cause.Params))
		}
	}

	builder.ErrorWithDetail(status, de.Key, detail, err)
}

// respondBindError writes a 400 for a body or query that could not be bound.
func respondBindError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		builder.ErrorWithDetail(http.StatusBadRequest, i18n.ErrKeyValidation, ErrorDetail{Details: details}, err)
		return
	}

	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		builder.ErrorWithDetail(http.StatusBadRequest, i18n.ErrKeyValidation,
			ErrorDetail{Details: map[string]string{ve.Field: ve.Message}}, err)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
}
