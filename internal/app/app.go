// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cardapio-service/config"
	"github.com/guttosm/cardapio-service/internal/http"
	"github.com/guttosm/cardapio-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// Application is the wired storefront.
type Application struct {
	Router *gin.Engine
	db     *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	// Logger first, everything below logs.
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database)
	if db != nil {
		middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	services := InitializeServices(cfg, InitializeStores(db))
	routerComponents := InitializeRouter(services, db, cfg)

	return &Application{
		Router: http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		db:     db,
	}
}

// Close flushes pending log entries and disconnects from the database.
func (a *Application) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	if err := a.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		return err
	}
	return nil
}
