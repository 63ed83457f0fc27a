//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	db, err := repository.NewMongoDB(mongoContainer.URI, "test_checkout_service")
	require.NoError(t, err)

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test-logs",
	})
	wrappedRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb)

	t.Run("stays closed while MongoDB is healthy", func(t *testing.T) {
		err := wrappedRepo.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "calculate"})
		assert.NoError(t, err)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("opens when MongoDB goes away and drops writes", func(t *testing.T) {
		require.NoError(t, db.Close(ctx))

		for i := 0; i < 2; i++ {
			err := wrappedRepo.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "lost"})
			assert.Error(t, err)
		}
		assert.True(t, cb.IsOpen())

		err := wrappedRepo.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "dropped"})
		assert.NoError(t, err, "open circuit drops log writes")

		_, err = wrappedRepo.Count(ctx, repository.LogQueryOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}
