package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/internal/domain/dto"
	"github.com/guttosm/cardapio-service/internal/metrics"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/guttosm/cardapio-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RateBurst         int
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService

	Catalog      service.CatalogService
	Selections   service.SelectionService
	Carts        service.CartService
	Checkout     service.CheckoutService
	ProductAdmin service.ProductAdminService
	Settings     service.SettingsService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableIdempotency: true,
		RequestTimeout:    middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the storefront.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api/v1")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(&cfg) {
		group.RegisterRoutes(api)
	}

	return router
}

// routeGroups builds a route group for every service that is configured.
func routeGroups(cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if cfg.Catalog != nil {
		groups = append(groups, NewCatalogRoutes(NewCatalogHandler(cfg.Catalog)))
	}
	if cfg.Selections != nil && cfg.Carts != nil {
		groups = append(groups, NewSelectionRoutes(NewSelectionHandler(cfg.Selections, cfg.Carts)))
	}
	if cfg.Carts != nil && cfg.Checkout != nil {
		groups = append(groups, NewCartRoutes(NewCartHandler(cfg.Carts, cfg.Checkout)))
	}
	if cfg.ProductAdmin != nil || cfg.Settings != nil {
		var products *ProductAdminHandler
		if cfg.ProductAdmin != nil {
			products = NewProductAdminHandler(cfg.ProductAdmin)
		}
		var settings *SettingsHandler
		if cfg.Settings != nil {
			settings = NewSettingsHandler(cfg.Settings)
		}
		groups = append(groups, NewAdminRoutes(products, settings))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.LoggingService != nil {
		router.Use(func(c *gin.Context) {
			c.Set(LoggingServiceKey, cfg.LoggingService)
			c.Next()
		})
	}

	if cfg.RateLimit > 0 {
		var limiter *middleware.ShardedRateLimiter
		if cfg.RateBurst > 0 {
			limiter = middleware.NewShardedRateLimiter(cfg.RateLimit, cfg.RateWindow, cfg.RateBurst, 16, middleware.ClientIPKey)
		} else {
			limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		if cfg.IdempotencyTTL > 0 {
			idempotencyCfg = middleware.NewIdempotencyConfig(cfg.IdempotencyTTL)
		}
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}
