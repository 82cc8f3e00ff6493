package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/i18n"
	"github.com/guttosm/cardapio-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and writes a 500 if no handler answered.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		event := log.Warn()
		if c.Writer.Status() >= http.StatusInternalServerError || !c.Writer.Written() {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("cart_id", GetCartID(c)).
			Str("session_id", GetSessionID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
