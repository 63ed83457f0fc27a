//go:build !integration

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/domain/model"
)

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name          string
		rules         string
		items         string
		expectedTotal int
	}{
		{name: "empty rules use default catalog", rules: "", items: "AAABBD", expectedTotal: 190},
		{name: "custom rules", rules: "A:10,B:30:2:45", items: "AABB", expectedTotal: 65},
		{name: "invalid rules fall back to default", rules: "A:-1", items: "AAA", expectedTotal: 130},
		{name: "garbage falls back to default", rules: "not rules", items: "AB", expectedTotal: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := LoadCatalog(tt.rules)
			require.NotNil(t, catalog)

			components := InitializeServices(config.Config{Pricing: config.PricingConfig{Rules: tt.rules}})
			assert.Equal(t, tt.expectedTotal, components.Engine.Total(tt.items))
		})
	}
}

func TestInitializeServices(t *testing.T) {
	t.Run("wires every service", func(t *testing.T) {
		components := InitializeServices(config.Config{
			Auth: config.AuthConfig{SessionSecretKey: "secret"},
		})

		require.NotNil(t, components)
		assert.NotNil(t, components.Engine)
		assert.NotNil(t, components.Receipts)
		assert.NotNil(t, components.History)
		require.NotNil(t, components.Sessions)

		session, err := components.Sessions.Create()
		require.NoError(t, err)
		claims, err := components.Sessions.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.SessionID, claims.SessionID)
	})

	t.Run("no secret disables sessions", func(t *testing.T) {
		components := InitializeServices(config.Config{})
		assert.Nil(t, components.Sessions)
	})

	t.Run("history uses configured cap", func(t *testing.T) {
		components := InitializeServices(config.Config{
			History: config.HistoryConfig{MaxEntries: 2},
		})
		for _, items := range []string{"A", "B", "C"} {
			components.History.Record("s", model.HistoryEntry{Input: items})
		}
		entries := components.History.List("s")
		require.Len(t, entries, 2)
		assert.Equal(t, "B", entries[0].Input)
		assert.Equal(t, "C", entries[1].Input)
	})
}
