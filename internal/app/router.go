// Package app provides router configuration.
package app

import (
	"sort"

	"github.com/guttosm/cardapio-service/config"
	"github.com/guttosm/cardapio-service/internal/http"
	"github.com/guttosm/cardapio-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration over the services.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if db != nil {
		loggingService = db.LoggingService
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.CheckerFunc(db.DB.HealthCheck))
		}

		names := make([]string, 0, len(db.CircuitBreakers))
		for name := range db.CircuitBreakers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			healthHandler.RegisterCircuitBreaker(name, db.CircuitBreakers[name])
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RateBurst:         cfg.Server.RateBurst,
		EnableIdempotency: true,
		IdempotencyTTL:    cfg.Server.IdempotencyTTL,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}
	if services != nil {
		routerCfg.Catalog = services.Catalog
		routerCfg.Selections = services.Selections
		routerCfg.Carts = services.Carts
		routerCfg.Checkout = services.Checkout
		routerCfg.ProductAdmin = services.ProductAdmin
		routerCfg.Settings = services.Settings
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
