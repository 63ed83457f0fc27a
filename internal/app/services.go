// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Engine   service.PricingEngine
	Receipts service.ReceiptService
	History  service.HistoryStore
	// Sessions is nil when no session secret is configured.
	Sessions service.SessionService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	engine := service.NewCheckoutService(service.WithCatalog(LoadCatalog(cfg.Pricing.Rules)))

	components := &ServiceComponents{
		Engine:   engine,
		Receipts: service.NewReceiptService(engine),
		History: service.NewHistoryService(service.HistoryConfig{
			Sessions:   cfg.History.Size,
			TTL:        cfg.History.TTL,
			MaxEntries: cfg.History.MaxEntries,
		}),
	}

	if cfg.Auth.SessionSecretKey != "" {
		components.Sessions = service.NewSessionService(service.NewSessionConfigFromAuthConfig(cfg.Auth))
	} else {
		log.Warn().Msg("Session secret is empty, checkout sessions and history are disabled")
	}

	return components
}

// LoadCatalog parses rules into a catalog. Empty rules select the default
// catalog; invalid rules are logged and fall back to it.
func LoadCatalog(rules string) *model.Catalog {
	if rules == "" {
		return model.DefaultCatalog()
	}

	catalog, err := model.ParseCatalog(rules)
	if err != nil {
		log.Error().Err(err).Str("rules", rules).Msg("Invalid PRICING_RULES - using default catalog")
		return model.DefaultCatalog()
	}

	log.Info().Str("rules", model.FormatRules(catalog)).Msg("Loaded pricing rules")
	return catalog
}
