package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/i18n"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
)

// LoggingServiceKey is the context key under which the router exposes the logging service.
const LoggingServiceKey = "logging_service"

func loggingService(c *gin.Context) (service.LoggingService, bool) {
	v, exists := c.Get(LoggingServiceKey)
	if !exists {
		return nil, false
	}
	ls, ok := v.(service.LoggingService)
	return ls, ok
}

// audit records a business event when a logging service is attached to the request.
func audit(c *gin.Context, action, message string, fields map[string]interface{}) {
	if ls, ok := loggingService(c); ok {
		middleware.AuditLog(ls, c, action, message, fields)
	}
}

func auditError(c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if ls, ok := loggingService(c); ok {
		middleware.AuditLogError(ls, c, action, message, err, fields)
	}
}

// lineIndex parses the :index path parameter. It writes the 400 itself when the value is not
// a non-negative integer.
func lineIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		NewResponseBuilder(c).ErrorWithDetail(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
			ErrorDetail{Details: map[string]string{"indice": "must be a non-negative integer"}}, err)
		return 0, false
	}
	return index, true
}
