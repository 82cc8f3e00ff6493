// Package main is the entry point for the cardapio storefront service.
//
// @title           Cardápio API
// @version         1.0.0
// @description     Restaurant storefront: catalog, multi-flavor composition, cart and checkout.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/cardapio-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Product browsing
//
// @tag.name        Selection
// @tag.description Product customization sessions
//
// @tag.name        Cart
// @tag.description Cart mutations, checkout and order history
//
// @tag.name        Admin
// @tag.description Product registration
//
// @tag.name        Settings
// @tag.description Categories, sizes and flavor limit
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/guttosm/cardapio-service/config"
	_ "github.com/guttosm/cardapio-service/docs" // swagger docs
	"github.com/guttosm/cardapio-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
