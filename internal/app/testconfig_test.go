package app

import (
	"time"

	"github.com/guttosm/cardapio-service/config"
	"github.com/shopspring/decimal"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
		Cache:  config.CacheConfig{Size: 100, TTL: time.Minute, SessionTTL: time.Minute},
		Store: config.StoreConfig{
			DeliveryFee:        decimal.RequireFromString("7.50"),
			OrderIDPrefix:      "PED",
			DefaultMaxQuantity: 99,
			NotesMaxLength:     200,
		},
	}
}
