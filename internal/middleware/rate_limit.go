package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/i18n"
	"golang.org/x/time/rate"
)

const (
	// defaultNumShards is the default number of shards for the rate limiter.
	defaultNumShards = 16
	// idleVisitorTTL is how long an idle visitor is remembered.
	idleVisitorTTL = 10 * time.Minute
)

// visitor is the token bucket of one client.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// KeyFunc picks the identity a request is limited under.
type KeyFunc func(c *gin.Context) string

// ClientIPKey limits per client IP.
func ClientIPKey(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ShardedRateLimiter keeps one token bucket per client, spread over shards to reduce lock contention.
// A client may spend Burst requests at once and then refills at Limit per Window.
type ShardedRateLimiter struct {
	shards   []*rateLimiterShard
	limit    int
	window   time.Duration
	every    rate.Limit
	burst    int
	key      KeyFunc
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiter is the limiter used by the router.
type RateLimiter = ShardedRateLimiter

// NewRateLimiter allows limit requests per window per client IP, with a burst equal to limit.
func NewRateLimiter(limit int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(limit, window, limit, defaultNumShards, ClientIPKey)
}

// NewShardedRateLimiter creates a limiter with an explicit burst, shard count and key.
func NewShardedRateLimiter(limit int, window time.Duration, burst, numShards int, key KeyFunc) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if window <= 0 {
		window = time.Minute
	}
	if limit <= 0 {
		limit = 1
	}
	if burst <= 0 {
		burst = limit
	}
	if key == nil {
		key = ClientIPKey
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &ShardedRateLimiter{
		shards: shards,
		limit:  limit,
		window: window,
		every:  rate.Limit(float64(limit) / window.Seconds()),
		burst:  burst,
		key:    key,
		stopCh: make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

func (rl *ShardedRateLimiter) getShard(identifier string) *rateLimiterShard {
	return rl.shards[xxhash.Sum64String(identifier)%uint64(len(rl.shards))]
}

func (rl *ShardedRateLimiter) limiterFor(identifier string, now time.Time) *rate.Limiter {
	shard := rl.getShard(identifier)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	v, ok := shard.visitors[identifier]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.burst)}
		shard.visitors[identifier] = v
	}
	v.lastSeen = now
	return v.limiter
}

// reserve takes one token for identifier. When none is available it returns how long to wait.
func (rl *ShardedRateLimiter) reserve(identifier string, now time.Time) (allowed bool, remaining int, retryAfter time.Duration) {
	lim := rl.limiterFor(identifier, now)
	if lim.AllowN(now, 1) {
		return true, int(math.Max(0, math.Floor(lim.TokensAt(now)))), 0
	}
	r := lim.ReserveN(now, 1)
	retryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, retryAfter
}

// RateLimit returns the rate limiting middleware.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.reserve(rl.key(c), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *ShardedRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.cleanupIdle(now)
		case <-rl.stopCh:
			return
		}
	}
}

// cleanupIdle forgets visitors not seen for idleVisitorTTL. Their bucket would be full again anyway.
func (rl *ShardedRateLimiter) cleanupIdle(now time.Time) {
	threshold := idleVisitorTTL
	if rl.window*2 > threshold {
		threshold = rl.window * 2
	}

	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, v := range shard.visitors {
			if now.Sub(v.lastSeen) > threshold {
				delete(shard.visitors, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. Safe to call twice.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats returns current rate limiter statistics.
func (rl *ShardedRateLimiter) Stats() (totalVisitors int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.visitors)
		totalVisitors += perShard[i]
		shard.mu.Unlock()
	}
	return totalVisitors, perShard
}
