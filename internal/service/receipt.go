package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// ErrEmptyReceipt is returned when a receipt is requested for an empty sequence.
var ErrEmptyReceipt = errors.New("no items to put on a receipt")

const (
	receiptTitle    = "SUPERMARKET RECEIPT"
	receiptRule     = "==================="
	receiptFooter   = "Thank you for shopping with us!"
	receiptDateForm = "2006-01-02 15:04:05"
)

// ReceiptService issues and renders plain-text receipts.
type ReceiptService interface {
	// Issue prices items and stamps the result with the current time.
	Issue(items string) (model.Receipt, error)
	// Render formats a receipt as text.
	Render(receipt model.Receipt) string
	// Filename returns the download name for a receipt.
	Filename(receipt model.Receipt) string
}

// ReceiptServiceImpl implements ReceiptService on top of a PricingEngine.
type ReceiptServiceImpl struct {
	engine PricingEngine
	now    func() time.Time
}

// ReceiptOption configures a ReceiptServiceImpl.
type ReceiptOption func(*ReceiptServiceImpl)

// WithClock overrides the time source used to stamp receipts.
func WithClock(now func() time.Time) ReceiptOption {
	return func(s *ReceiptServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// NewReceiptService creates a receipt service.
func NewReceiptService(engine PricingEngine, opts ...ReceiptOption) *ReceiptServiceImpl {
	s := &ReceiptServiceImpl{
		engine: engine,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue prices items for a receipt. Lines come from the engine's breakdown,
// so the receipt total matches the engine total.
func (s *ReceiptServiceImpl) Issue(items string) (model.Receipt, error) {
	if items == "" {
		return model.Receipt{}, ErrEmptyReceipt
	}

	return model.Receipt{
		Checkout: s.engine.Breakdown(items),
		IssuedAt: s.now(),
	}, nil
}

// Render formats a receipt in the store's plain-text layout.
func (s *ReceiptServiceImpl) Render(receipt model.Receipt) string {
	var b strings.Builder

	b.WriteString(receiptTitle + "\n")
	b.WriteString(receiptRule + "\n\n")
	b.WriteString("Date: " + receipt.IssuedAt.Format(receiptDateForm) + "\n\n")
	b.WriteString("Items:\n")
	for _, line := range receipt.Lines {
		b.WriteString(line.String() + "\n")
	}
	b.WriteString("\n" + receiptRule + "\n")
	b.WriteString("TOTAL: " + strconv.Itoa(receipt.Total) + "\n")
	b.WriteString(receiptRule + "\n\n")
	b.WriteString(receiptFooter)

	return b.String()
}

// Filename returns "receipt-<unix millis>.txt".
func (s *ReceiptServiceImpl) Filename(receipt model.Receipt) string {
	return "receipt-" + strconv.FormatInt(receipt.IssuedAt.UnixMilli(), 10) + ".txt"
}
