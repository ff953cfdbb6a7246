package model

import (
	"fmt"
	"math"
)

// Request carries the user's styling preferences for one curation run.
type Request struct {
	Prompt        string   `json:"prompt"`
	Occasion      string   `json:"occasion,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	StyleKeywords []string `json:"styleKeywords,omitempty"`
}

// Validate ensures the request has valid data. A missing occasion is fine;
// it is derived from the prompt later.
func (r *Request) Validate() error {
	if r.Budget != nil {
		if math.IsNaN(*r.Budget) || math.IsInf(*r.Budget, 0) {
			return fmt.Errorf("budget must be a finite number")
		}
		if *r.Budget < 0 {
			return fmt.Errorf("budget must be non-negative, got %.2f", *r.Budget)
		}
	}
	return nil
}

// Response is what a curation run hands back to the caller: zero or more
// ranked outfits plus the prompt that produced them. A zero-length Outfits
// slice is a normal result, not an error.
type Response struct {
	Outfits []Outfit `json:"outfits"`
	Prompt  string   `json:"prompt"`
}
