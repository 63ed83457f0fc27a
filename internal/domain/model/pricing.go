// Package model defines the core domain entities for the checkout service.
package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode"
)

var (
	// ErrInvalidUnitPrice is returned when a rule has a negative unit price.
	ErrInvalidUnitPrice = errors.New("unit price must not be negative")
	// ErrInvalidBulkDeal is returned when a bulk deal has a non-positive quantity or a negative price.
	ErrInvalidBulkDeal = errors.New("bulk deal needs a positive quantity and a non-negative price")
	// ErrInvalidItem is returned when an item identifier is not a printable, non-space character.
	ErrInvalidItem = errors.New("item identifier must be a printable, non-space character")
	// ErrDuplicateItem is returned when two identifiers fold to the same uppercase item.
	ErrDuplicateItem = errors.New("duplicate item identifier")
)

// BulkDeal charges a fixed Price for exactly Quantity units of one item.
//
// @Description Special offer: Quantity units for Price
type BulkDeal struct {
	// Quantity is the number of units in one bundle
	Quantity int `json:"quantity" example:"3"`
	// Price is the total charged for one bundle
	Price int `json:"price" example:"130"`
}

// PricingRule is the price behavior of a single item.
// A nil Deal means the item has no bulk offer, so a rule can never carry
// a quantity without a price or the other way round.
//
// @Description Unit price and optional special offer for one item
type PricingRule struct {
	// UnitPrice is the price of a single unit
	UnitPrice int `json:"unit_price" example:"50"`
	// Deal is the optional bulk offer
	Deal *BulkDeal `json:"special,omitempty"`
}

// NewPricingRule creates a rule with a unit price and no bulk deal.
func NewPricingRule(unitPrice int) (PricingRule, error) {
	if unitPrice < 0 {
		return PricingRule{}, ErrInvalidUnitPrice
	}
	return PricingRule{UnitPrice: unitPrice}, nil
}

// NewBulkPricingRule creates a rule with a unit price and a "quantity for price" deal.
func NewBulkPricingRule(unitPrice, quantity, price int) (PricingRule, error) {
	rule, err := NewPricingRule(unitPrice)
	if err != nil {
		return PricingRule{}, err
	}
	if quantity <= 0 || price < 0 {
		return PricingRule{}, ErrInvalidBulkDeal
	}
	rule.Deal = &BulkDeal{Quantity: quantity, Price: price}
	return rule, nil
}

// Validate checks a rule built without the constructors.
func (r PricingRule) Validate() error {
	if r.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if r.Deal != nil && (r.Deal.Quantity <= 0 || r.Deal.Price < 0) {
		return ErrInvalidBulkDeal
	}
	return nil
}

// HasDeal reports whether the rule has a bulk offer.
func (r PricingRule) HasDeal() bool {
	return r.Deal != nil
}

// Split divides count units into full bundles and the remainder priced per unit.
// Without a deal every unit is remainder.
func (r PricingRule) Split(count int) (bundles, remainder int) {
	if count <= 0 {
		return 0, 0
	}
	if r.Deal == nil {
		return 0, count
	}
	return count / r.Deal.Quantity, count % r.Deal.Quantity
}

// Contribution returns the price of count units under this rule.
func (r PricingRule) Contribution(count int) int {
	bundles, remainder := r.Split(count)
	total := remainder * r.UnitPrice
	if bundles > 0 {
		total += bundles * r.Deal.Price
	}
	return total
}

// LineItems itemizes count units of item the same way Contribution prices them:
// one special line for the full bundles, one plain line for the rest.
func (r PricingRule) LineItems(item rune, count int) []LineItem {
	bundles, remainder := r.Split(count)
	lines := make([]LineItem, 0, 2)
	if bundles > 0 {
		lines = append(lines, LineItem{
			Item:     string(item),
			Quantity: r.Deal.Quantity,
			Special:  true,
			Price:    r.Deal.Price,
			Bundles:  bundles,
			Total:    bundles * r.Deal.Price,
		})
	}
	if remainder > 0 {
		lines = append(lines, LineItem{
			Item:     string(item),
			Quantity: remainder,
			Price:    r.UnitPrice,
			Total:    remainder * r.UnitPrice,
		})
	}
	return lines
}

// Offer describes the bulk deal as "3 for 130", or "-" when there is none.
func (r PricingRule) Offer() string {
	if r.Deal == nil {
		return "-"
	}
	return strconv.Itoa(r.Deal.Quantity) + " for " + strconv.Itoa(r.Deal.Price)
}

// Catalog maps item identifiers to pricing rules. It is immutable once built
// and safe for concurrent reads.
type Catalog struct {
	rules map[rune]PricingRule
	ids   []rune
}

// NewCatalog validates rules and builds a catalog. Identifiers are folded to
// uppercase, which is the canonical form.
func NewCatalog(rules map[rune]PricingRule) (*Catalog, error) {
	c := &Catalog{
		rules: make(map[rune]PricingRule, len(rules)),
		ids:   make([]rune, 0, len(rules)),
	}

	for id, rule := range rules {
		if !unicode.IsPrint(id) || unicode.IsSpace(id) {
			return nil, fmt.Errorf("item %q: %w", id, ErrInvalidItem)
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("item %q: %w", id, err)
		}

		canonical := unicode.ToUpper(id)
		if _, exists := c.rules[canonical]; exists {
			return nil, fmt.Errorf("item %q: %w", canonical, ErrDuplicateItem)
		}
		if rule.Deal != nil {
			deal := *rule.Deal
			rule.Deal = &deal
		}
		c.rules[canonical] = rule
		c.ids = append(c.ids, canonical)
	}

	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid rules.
func MustCatalog(rules map[rune]PricingRule) *Catalog {
	c, err := NewCatalog(rules)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the rule for id and whether the catalog has one.
func (c *Catalog) Lookup(id rune) (PricingRule, bool) {
	rule, ok := c.rules[id]
	if ok && rule.Deal != nil {
		deal := *rule.Deal
		rule.Deal = &deal
	}
	return rule, ok
}

// Contains reports whether id is priced by the catalog.
func (c *Catalog) Contains(id rune) bool {
	_, ok := c.rules[id]
	return ok
}

// Identifiers returns the catalog's items in ascending order.
func (c *Catalog) Identifiers() []rune {
	ids := make([]rune, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Len returns the number of priced items.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Tally counts the items of a sequence the catalog knows about.
// Unknown characters are skipped before any rule lookup.
func (c *Catalog) Tally(items string) ItemCounts {
	counts := make(ItemCounts)
	for _, item := range items {
		if c.Contains(item) {
			counts[item]++
		}
	}
	return counts
}

// Ignored returns the characters of items that the catalog does not price,
// in input order.
func (c *Catalog) Ignored(items string) string {
	var ignored []rune
	for _, item := range items {
		if !c.Contains(item) {
			ignored = append(ignored, item)
		}
	}
	return string(ignored)
}

// ItemCounts is the per-item tally of an item sequence.
type ItemCounts map[rune]int

// Items returns the counted identifiers in ascending order.
func (ic ItemCounts) Items() []rune {
	ids := make([]rune, 0, len(ic))
	for id := range ic {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ByName returns the counts keyed by string, suitable for JSON.
func (ic ItemCounts) ByName() map[string]int {
	out := make(map[string]int, len(ic))
	for id, n := range ic {
		out[string(id)] = n
	}
	return out
}

// DefaultRules is the store's standard price list.
func DefaultRules() map[rune]PricingRule {
	return map[rune]PricingRule{
		'A': {UnitPrice: 50, Deal: &BulkDeal{Quantity: 3, Price: 130}},
		'B': {UnitPrice: 30, Deal: &BulkDeal{Quantity: 2, Price: 45}},
		'C': {UnitPrice: 20},
		'D': {UnitPrice: 15},
	}
}

var defaultCatalog = MustCatalog(DefaultRules())

// DefaultCatalog returns the catalog built from DefaultRules.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
