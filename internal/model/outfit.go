package model

import (
	"fmt"
	"math"
)

// priceTolerance is the allowed float drift between an outfit's recorded
// total and the recomputed sum of its item prices.
const priceTolerance = 0.001

// Outfit is a complete multi-item look assembled for one occasion.
type Outfit struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Style          string       `json:"style"` // resolved occasion key
	Items          []ScoredItem `json:"items"`
	TotalPrice     float64      `json:"totalPrice"`
	TrendScore     float64      `json:"trendScore"` // mean of item trend scores
	TrendLevel     string       `json:"trendLevel,omitempty"`
	Highlights     []string     `json:"highlights,omitempty"`
	StylingTips    []string     `json:"stylingTips,omitempty"`
	ItemCommentary []string     `json:"itemCommentary,omitempty"`
}

// SumItemPrices recomputes the total price from the constituent items.
func (o *Outfit) SumItemPrices() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// Validate ensures the outfit satisfies its structural invariants: one item
// per filled slot, a recomputed total price, and scores in range.
func (o *Outfit) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("outfit ID is required")
	}
	if len(o.Items) == 0 || len(o.Items) > 5 {
		return fmt.Errorf("outfit must contain between 1 and 5 items, got %d", len(o.Items))
	}

	seen := make(map[Category]bool, len(o.Items))
	for _, item := range o.Items {
		if seen[item.Category] {
			return fmt.Errorf("outfit has more than one %s item", item.Category)
		}
		seen[item.Category] = true
	}

	if math.Abs(o.TotalPrice-o.SumItemPrices()) > priceTolerance {
		return fmt.Errorf("total price %.2f does not match item sum %.2f", o.TotalPrice, o.SumItemPrices())
	}

	if o.TrendScore < 0 || o.TrendScore > 100 {
		return fmt.Errorf("outfit trend score must be between 0 and 100, got %.2f", o.TrendScore)
	}

	return nil
}
