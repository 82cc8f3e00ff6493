// Package config loads the storefront configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Store    StoreConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RateBurst      int
	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig sizes the catalog listing cache and the selection session store.
type CacheConfig struct {
	Size       int
	TTL        time.Duration
	SessionTTL time.Duration
}

// StoreConfig holds the storefront business settings.
type StoreConfig struct {
	DeliveryFee        decimal.Decimal
	OrderTZOffset      time.Duration
	OrderIDPrefix      string
	DefaultMaxQuantity int
	NotesMaxLength     int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// SeedDefaults writes the default categories, sizes and flavor limit when none are stored.
	SeedDefaults bool

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load reads an optional .env file, then builds a Config from environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RateBurst:      getEnvInt("RATE_BURST", 0),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size:       getEnvInt("CACHE_SIZE", 1000),
			TTL:        getEnvDuration("CACHE_TTL", time.Minute),
			SessionTTL: getEnvDuration("SESSION_TTL", 30*time.Minute),
		},
		Store: StoreConfig{
			DeliveryFee:        getEnvDecimal("DELIVERY_FEE", decimal.NewFromInt(5)),
			OrderTZOffset:      getEnvDuration("ORDER_TZ_OFFSET", -3*time.Hour),
			OrderIDPrefix:      getEnv("ORDER_ID_PREFIX", "PED"),
			DefaultMaxQuantity: getEnvInt("DEFAULT_MAX_QUANTITY", 99),
			NotesMaxLength:     getEnvInt("NOTES_MAX_LENGTH", 200),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "cardapio"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			SeedDefaults:                   getEnvBool("MONGODB_SEED_DEFAULTS", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvDecimal accepts "5.00" and "5,00". Negative amounts fall back to the default.
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(strings.Replace(strings.TrimSpace(v), ",", ".", 1)); err == nil && !d.IsNegative() {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
