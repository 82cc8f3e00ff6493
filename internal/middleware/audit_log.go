package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/logger"
	"github.com/guttosm/cardapio-service/internal/service"
)

// Audit action types.
const (
	ActionSelectionStart = "selection.start"
	ActionCartAdd        = "cart.add"
	ActionCartUpdate     = "cart.update"
	ActionCartRemove     = "cart.remove"
	ActionCartClear      = "cart.clear"
	ActionCheckout       = "checkout"
	ActionProductCreate  = "product.create"
	ActionProductUpdate  = "product.update"
	ActionProductDelete  = "product.delete"
	ActionSettingsUpdate = "settings.update"
)

// AuditLog records a state-changing action, such as a cart mutation or a checkout.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	l := logger.WithContext(fields)
	l.Info().
		Str("action", actionType).
		Str("request_id", GetRequestID(c)).
		Str("cart_id", GetCartID(c)).
		Str("session_id", GetSessionID(c)).
		Msg(message)
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "info", actionType, message, fields)
	enqueue(loggingService, entry)
}

// AuditLogError records a rejected action together with its error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	enqueue(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		CartID:     GetCartID(c),
		SessionID:  GetSessionID(c),
		ActionType: actionType,
		Fields:     fields,
	}
}

// enqueue hands the entry to the async logger, or writes it on its own goroutine when none is running.
func enqueue(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
