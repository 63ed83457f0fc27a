package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRuleSpec is returned when a rule string cannot be parsed.
var ErrInvalidRuleSpec = errors.New("invalid pricing rule")

// ParseRules parses a comma separated rule list such as
// "A:50:3:130,B:30:2:45,C:20,D:15". Each entry is ITEM:UNIT_PRICE with an
// optional :DEAL_QUANTITY:DEAL_PRICE suffix.
func ParseRules(s string) (map[rune]PricingRule, error) {
	rules := make(map[rune]PricingRule)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 2 && len(parts) != 4 {
			return nil, fmt.Errorf("%q: %w: want ITEM:PRICE or ITEM:PRICE:QTY:DEAL", entry, ErrInvalidRuleSpec)
		}

		id, size := utf8.DecodeRuneInString(strings.TrimSpace(parts[0]))
		if id == utf8.RuneError || size != len(strings.TrimSpace(parts[0])) {
			return nil, fmt.Errorf("%q: %w", entry, ErrInvalidItem)
		}

		nums := make([]int, 0, 3)
		for _, p := range parts[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("%q: %w: %v", entry, ErrInvalidRuleSpec, err)
			}
			nums = append(nums, n)
		}

		var (
			rule PricingRule
			err  error
		)
		if len(nums) == 1 {
			rule, err = NewPricingRule(nums[0])
		} else {
			rule, err = NewBulkPricingRule(nums[0], nums[1], nums[2])
		}
		if err != nil {
			return nil, fmt.Errorf("%q: %w", entry, err)
		}

		if _, exists := rules[id]; exists {
			return nil, fmt.Errorf("%q: %w", entry, ErrDuplicateItem)
		}
		rules[id] = rule
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules", ErrInvalidRuleSpec)
	}
	return rules, nil
}

// ParseCatalog parses a rule list and builds a catalog from it.
func ParseCatalog(s string) (*Catalog, error) {
	rules, err := ParseRules(s)
	if err != nil {
		return nil, err
	}
	return NewCatalog(rules)
}

// FormatRules renders a catalog in the format accepted by ParseRules.
func FormatRules(c *Catalog) string {
	entries := make([]string, 0, c.Len())
	for _, id := range c.Identifiers() {
		rule, _ := c.Lookup(id)
		entry := string(id) + ":" + strconv.Itoa(rule.UnitPrice)
		if rule.Deal != nil {
			entry += ":" + strconv.Itoa(rule.Deal.Quantity) + ":" + strconv.Itoa(rule.Deal.Price)
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, ",")
}
