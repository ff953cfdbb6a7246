package model

import (
	"fmt"
	"sort"
)

// ScoredItem is an Item annotated with the scores and reasoning derived for
// a single curation request. Scored items are never persisted.
type ScoredItem struct {
	Item
	TrendScore    float64  `json:"trendScore"`
	OccasionScore float64  `json:"occasionScore"`
	MatchReasons  []string `json:"matchReasons,omitempty"`
	TrendMatches  []string `json:"trendMatches,omitempty"`
	StylingTip    string   `json:"stylingTip,omitempty"`
}

// Validate ensures the scored item's derived fields are in range.
func (s *ScoredItem) Validate() error {
	if err := s.Item.Validate(); err != nil {
		return err
	}
	if s.TrendScore < 0 || s.TrendScore > 100 {
		return fmt.Errorf("trend score must be between 0 and 100, got %.2f", s.TrendScore)
	}
	if s.OccasionScore < 0 || s.OccasionScore > 100 {
		return fmt.Errorf("occasion score must be between 0 and 100, got %.2f", s.OccasionScore)
	}
	return nil
}

// ScoredItems is a slice of ScoredItem with ranking helpers.
type ScoredItems []ScoredItem

// Sort orders items by occasion score descending. The sort is stable so that
// items tying on score keep their catalog order, which keeps results
// deterministic for identical inputs.
func (s ScoredItems) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].OccasionScore > s[j].OccasionScore
	})
}

// Top returns the highest-scoring item, or nil if empty. It assumes the
// slice is already sorted.
func (s ScoredItems) Top() *ScoredItem {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// ByCategory groups items by their classified category, preserving ranked
// order within each group.
func (s ScoredItems) ByCategory() map[Category]ScoredItems {
	groups := make(map[Category]ScoredItems)
	for _, item := range s {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}
