// Package main is the entry point for the checkout-service application.
//
// @title           Checkout Service API
// @version         1.0.0
// @description     Supermarket checkout pricing. Prices sequences of scanned items
// @description     against unit prices and "N for P" multi-buy offers.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/checkout-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  SessionAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" from POST /api/sessions.
//
// @tag.name        Checkout
// @tag.description Pricing, itemized breakdowns and receipts
//
// @tag.name        Catalog
// @tag.description Pricing rules and example baskets
//
// @tag.name        Sessions
// @tag.description Checkout sessions
//
// @tag.name        History
// @tag.description Per-session calculation history
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/checkout-service/config"
	_ "github.com/guttosm/checkout-service/docs" // swagger docs
	"github.com/guttosm/checkout-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server)
	server.OnShutdown(application.Close)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
