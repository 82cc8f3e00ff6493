// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cardapio-service/config"
	"github.com/guttosm/cardapio-service/internal/circuitbreaker"
	"github.com/guttosm/cardapio-service/internal/domain/model"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/repository"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/rs/zerolog/log"
)

// Breaker names, also used as readiness check names.
const (
	breakerProducts = "mongodb_products"
	breakerCarts    = "mongodb_carts"
	breakerOrders   = "mongodb_orders"
	breakerSettings = "mongodb_settings"
	breakerLogs     = "mongodb_logs"
)

// DatabaseComponents holds the MongoDB-backed stores, each behind its own circuit breaker.
type DatabaseComponents struct {
	DB              *repository.MongoDB
	Products        repository.ProductStore
	Carts           repository.CartStore
	Orders          repository.OrderStore
	Settings        repository.SettingsStore
	LoggingService  service.LoggingService
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and builds the stores.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory stores")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	breakers := make(map[string]*circuitbreaker.CircuitBreaker, 5)
	for _, name := range []string{breakerProducts, breakerCarts, breakerOrders, breakerSettings, breakerLogs} {
		breakers[name] = newBreaker(cfg, name)
	}

	components := &DatabaseComponents{
		DB:              db,
		Products:        repository.NewProductStoreWithCircuitBreaker(repository.NewProductRepository(db), breakers[breakerProducts]),
		Carts:           repository.NewCartStoreWithCircuitBreaker(repository.NewCartRepository(db), breakers[breakerCarts]),
		Orders:          repository.NewOrderStoreWithCircuitBreaker(repository.NewOrderRepository(db), breakers[breakerOrders]),
		Settings:        repository.NewSettingsStoreWithCircuitBreaker(repository.NewSettingsRepository(db), breakers[breakerSettings]),
		LoggingService:  service.NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breakers[breakerLogs])),
		CircuitBreakers: breakers,
	}

	if cfg.SeedDefaults {
		if err := seedSettings(ctx, components.Settings); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default settings")
		}
	}

	return components
}

// newBreaker builds a breaker that ignores misses and version conflicts and reports its state.
func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.CountsAsFailure,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// seedSettings stores the default categories, sizes and flavor limit for keys that were never saved.
func seedSettings(ctx context.Context, store repository.SettingsStore) error {
	cats, err := store.Categories(ctx)
	if err != nil {
		return err
	}
	if cats == nil {
		if err := store.SaveCategories(ctx, model.DefaultCategories()); err != nil {
			return err
		}
		log.Info().Msg("Seeded default categories")
	}

	sizes, err := store.Sizes(ctx)
	if err != nil {
		return err
	}
	if sizes == nil {
		if err := store.SaveSizes(ctx, model.DefaultSizes()); err != nil {
			return err
		}
		log.Info().Msg("Seeded default sizes")
	}

	flavors, err := store.FlavorConfig(ctx)
	if err != nil {
		return err
	}
	if flavors == nil {
		def := model.DefaultFlavorConfig()
		def.UpdatedAt = time.Now().UTC()
		if err := store.SaveFlavorConfig(ctx, def); err != nil {
			return err
		}
		log.Info().Int("max_flavors", def.MaxFlavors).Msg("Seeded default flavor limit")
	}
	return nil
}
