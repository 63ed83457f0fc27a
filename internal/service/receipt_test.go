package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 1, 28, 10, 30, 0, 0, time.UTC)
}

func TestReceiptService_Issue(t *testing.T) {
	svc := NewReceiptService(NewCheckoutService(), WithClock(fixedClock))

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Issue("")
		assert.ErrorIs(t, err, ErrEmptyReceipt)
	})

	t.Run("stamps and prices", func(t *testing.T) {
		receipt, err := svc.Issue("AAAB")
		require.NoError(t, err)
		assert.Equal(t, fixedClock(), receipt.IssuedAt)
		assert.Equal(t, 160, receipt.Total)
		assert.Len(t, receipt.Lines, 2)
	})

	t.Run("unknown items only", func(t *testing.T) {
		receipt, err := svc.Issue("xyz")
		require.NoError(t, err)
		assert.Equal(t, 0, receipt.Total)
		assert.Empty(t, receipt.Lines)
		assert.Equal(t, "xyz", receipt.Ignored)
	})
}

func TestReceiptService_Render(t *testing.T) {
	svc := NewReceiptService(NewCheckoutService(), WithClock(fixedClock))

	receipt, err := svc.Issue("AAAB")
	require.NoError(t, err)

	expected := strings.Join([]string{
		"SUPERMARKET RECEIPT",
		"===================",
		"",
		"Date: 2025-01-28 10:30:00",
		"",
		"Items:",
		"A x 3 (Special): 130 x 1",
		"B x 1: 30",
		"",
		"===================",
		"TOTAL: 160",
		"===================",
		"",
		"Thank you for shopping with us!",
	}, "\n")

	assert.Equal(t, expected, svc.Render(receipt))
}

func TestReceiptService_Render_TotalMatchesEngine(t *testing.T) {
	engine := NewCheckoutService()
	svc := NewReceiptService(engine, WithClock(fixedClock))

	for _, items := range ExampleInputs {
		if items == "" {
			continue
		}
		receipt, err := svc.Issue(items)
		require.NoError(t, err)
		assert.Contains(t, svc.Render(receipt), "TOTAL: "+strconv.Itoa(engine.Total(items))+"\n", items)
	}
}

func TestReceiptService_Filename(t *testing.T) {
	svc := NewReceiptService(NewCheckoutService(), WithClock(fixedClock))

	receipt, err := svc.Issue("A")
	require.NoError(t, err)
	assert.Equal(t, "receipt-1738060200000.txt", svc.Filename(receipt))
}
