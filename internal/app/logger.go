// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/cardapio-service/config"
	"github.com/guttosm/cardapio-service/internal/logger"
)

// InitializeLogger initializes the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
