package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// idempotencyCapacity bounds the number of remembered responses.
	idempotencyCapacity = 10000
)

// cachedResponse is a replayable response.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache[*cachedResponse]
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return NewIdempotencyConfig(IdempotencyKeyTTL)
}

// NewIdempotencyConfig remembers successful responses for ttl.
func NewIdempotencyConfig(ttl time.Duration) IdempotencyConfig {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return IdempotencyConfig{
		Cache:   cache.NewSharded[*cachedResponse]("idempotency", idempotencyCapacity, ttl, 8),
		TTL:     ttl,
		Enabled: true,
	}
}

// Idempotency replays the stored response when a POST, PUT or PATCH repeats an Idempotency-Key
// on the same path with the same body. Only 2xx responses are stored, so a refused checkout can be retried.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, err := idempotencyCacheKey(key, c.Request)
		if err != nil {
			c.Next()
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        append([]byte(nil), writer.body.Bytes()...),
			})
		}
	}
}

// idempotencyCacheKey hashes the client key with the method, path and body, restoring the body for the handler.
func idempotencyCacheKey(idempotencyKey string, req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write([]byte{0})
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// responseWriter tees the body so it can be stored.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
