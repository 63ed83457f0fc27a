package service

import (
	"strings"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// ExampleInputs are the sample baskets offered to callers.
var ExampleInputs = []string{
	"",
	"A",
	"AB",
	"CDBA",
	"AA",
	"AAA",
	"AAAA",
	"AAAAA",
	"AAAAAA",
	"AAAB",
	"AAABB",
	"AAABBD",
	"DABABA",
}

// PricingEngine defines the checkout pricing operations.
type PricingEngine interface {
	// Total returns the price of an item sequence.
	Total(items string) int
	// Breakdown returns the itemized checkout for an item sequence.
	Breakdown(items string) model.Checkout
	// Catalog returns the catalog the engine prices against.
	Catalog() *model.Catalog
}

// Option configures a CheckoutService.
type Option func(*CheckoutService)

// CheckoutService implements PricingEngine over an immutable catalog.
// It holds no mutable state, so one instance can serve concurrent callers.
type CheckoutService struct {
	catalog *model.Catalog
}

// NewCheckoutService creates a CheckoutService priced with the default catalog
// unless overridden by options.
func NewCheckoutService(opts ...Option) *CheckoutService {
	s := &CheckoutService{
		catalog: model.DefaultCatalog(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCatalog sets the catalog used for pricing. A nil catalog is ignored.
func WithCatalog(catalog *model.Catalog) Option {
	return func(s *CheckoutService) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// Catalog returns the engine's catalog.
func (s *CheckoutService) Catalog() *model.Catalog {
	return s.catalog
}

// Total computes the price of items. Characters without a pricing rule are
// ignored, and an empty sequence costs 0.
func (s *CheckoutService) Total(items string) int {
	if items == "" {
		return 0
	}

	counts := s.catalog.Tally(items)
	total := 0
	for _, id := range counts.Items() {
		if rule, ok := s.catalog.Lookup(id); ok {
			total += rule.Contribution(counts[id])
		}
	}
	return total
}

// Breakdown itemizes items using the same per-item split as Total, so the
// line totals always add up to the checkout total.
func (s *CheckoutService) Breakdown(items string) model.Checkout {
	checkout := model.Checkout{
		Items:  items,
		Counts: map[string]int{},
		Lines:  []model.LineItem{},
	}
	if items == "" {
		return checkout
	}

	counts := s.catalog.Tally(items)
	for _, id := range counts.Items() {
		rule, ok := s.catalog.Lookup(id)
		if !ok {
			continue
		}
		checkout.Lines = append(checkout.Lines, rule.LineItems(id, counts[id])...)
		checkout.Total += rule.Contribution(counts[id])
	}
	checkout.Counts = counts.ByName()
	checkout.Ignored = s.catalog.Ignored(items)

	return checkout
}

var defaultEngine = NewCheckoutService()

// ComputeTotal prices items against the default catalog.
func ComputeTotal(items string) int {
	return defaultEngine.Total(items)
}

// NormalizeItems folds input to the catalog's canonical uppercase form.
// Callers apply it before pricing; the engine itself matches exactly.
func NormalizeItems(items string) string {
	return strings.ToUpper(items)
}
