package model

import (
	"strconv"
	"time"
)

// LineItem is one itemized row of a checkout.
//
// @Description Itemized checkout row; special rows cover Bundles bundles of Quantity units
// @Example {"item": "A", "quantity": 3, "special": true, "price": 130, "bundles": 1, "total": 130}
type LineItem struct {
	// Item is the item identifier
	Item string `json:"item" example:"A"`
	// Quantity is the bundle size for special rows and the unit count otherwise
	Quantity int `json:"quantity" example:"3"`
	// Special marks a bulk deal row
	Special bool `json:"special" example:"true"`
	// Price is the bundle price for special rows and the unit price otherwise
	Price int `json:"price" example:"130"`
	// Bundles is the number of bundles on a special row
	Bundles int `json:"bundles,omitempty" example:"1"`
	// Total is what the row contributes to the checkout total
	Total int `json:"total" example:"130"`
}

// String renders the row in receipt form, e.g. "A x 3 (Special): 130 x 1" or "B x 1: 30".
func (l LineItem) String() string {
	if l.Special {
		return l.Item + " x " + strconv.Itoa(l.Quantity) + " (Special): " +
			strconv.Itoa(l.Price) + " x " + strconv.Itoa(l.Bundles)
	}
	return l.Item + " x " + strconv.Itoa(l.Quantity) + ": " + strconv.Itoa(l.Total)
}

// Checkout is the itemized result of pricing an item sequence.
//
// @Description Checkout breakdown with per-item counts, itemized rows and total
// @Example {"items": "AAAB", "counts": {"A": 3, "B": 1}, "lines": [], "total": 160}
type Checkout struct {
	// Items is the priced sequence as received
	Items string `json:"items" example:"AAAB"`
	// Counts is the tally of recognized items
	Counts map[string]int `json:"counts"`
	// Lines are the itemized rows in ascending item order
	Lines []LineItem `json:"lines"`
	// Ignored holds the characters without a pricing rule
	Ignored string `json:"ignored,omitempty" example:"x1"`
	// Total is the price of the whole sequence
	Total int `json:"total" example:"160"`
}

// Subtotal sums the line totals.
func (c Checkout) Subtotal() int {
	sum := 0
	for _, l := range c.Lines {
		sum += l.Total
	}
	return sum
}

// Empty reports whether nothing in the sequence was priced.
func (c Checkout) Empty() bool {
	return len(c.Lines) == 0
}

// Receipt is a checkout stamped with the time it was issued.
type Receipt struct {
	Checkout
	IssuedAt time.Time `json:"issued_at"`
}

// HistoryEntry records one calculation made in a checkout session.
//
// @Description A past calculation: the input sequence and its total
// @Example {"input": "AAB", "output": 130, "created_at": "2025-01-28T10:00:00Z"}
type HistoryEntry struct {
	// Input is the sequence that was priced
	Input string `json:"input" example:"AAB"`
	// Output is the computed total
	Output int `json:"output" example:"130"`
	// CreatedAt is when the calculation happened
	CreatedAt time.Time `json:"created_at" example:"2025-01-28T10:00:00Z"`
}
