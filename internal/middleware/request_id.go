// Package middleware provides HTTP middleware components for the storefront API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// CartIDKey is the context key for the cart a request operates on.
	CartIDKey ContextKey = "cart_id"
	// SessionIDKey is the context key for the customization session a request operates on.
	SessionIDKey ContextKey = "session_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// If the client provides X-Request-ID header, it will be used.
// Otherwise, a new UUID v4 will be generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return contextString(c, RequestIDKey)
}

// SetCartID tags the request with the cart it touches so request and audit logs can be joined per cart.
func SetCartID(c *gin.Context, cartID string) {
	if cartID != "" {
		c.Set(string(CartIDKey), cartID)
	}
}

// GetCartID returns the cart tagged on the request, if any.
func GetCartID(c *gin.Context) string {
	return contextString(c, CartIDKey)
}

// SetSessionID tags the request with the customization session it touches.
func SetSessionID(c *gin.Context, sessionID string) {
	if sessionID != "" {
		c.Set(string(SessionIDKey), sessionID)
	}
}

// GetSessionID returns the session tagged on the request, if any.
func GetSessionID(c *gin.Context) string {
	return contextString(c, SessionIDKey)
}

func contextString(c *gin.Context, key ContextKey) string {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
