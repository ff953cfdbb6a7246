package trend

import (
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// Dimension weights. Chosen so multi-dimension alignment compounds
// meaningfully but no single match saturates the scale.
var dimensionWeights = map[model.TrendDimension]float64{
	model.DimensionColor:      10,
	model.DimensionPattern:    8,
	model.DimensionFabric:     7,
	model.DimensionSilhouette: 9,
}

// Brand tier bonuses. Luxury takes precedence; an item counted as luxury is
// not also scored as premium.
const (
	premiumBrandBonus = 15
	luxuryBrandBonus  = 30
)

// Result holds a single item's trend score and the human-readable match
// descriptions that produced it, in discovery order: colors, then patterns,
// then fabrics, then silhouettes, then brand tier.
type Result struct {
	Matches []string
	Score   float64
}

// Scorer computes 0-100 trendiness scores from an immutable Book.
type Scorer struct {
	book *Book
}

// NewScorer creates a scorer backed by the given trend book.
func NewScorer(book *Book) *Scorer {
	return &Scorer{book: book}
}

// NewDefaultScorer creates a scorer backed by the stock trend book.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultBook())
}

// Score computes the item's trendiness from table matches and brand tier.
// The final score is clamped to [0, 100].
func (s *Scorer) Score(item model.Item) Result {
	text := item.SearchText()

	var result Result
	for _, dim := range scanOrder {
		weight := dimensionWeights[dim]
		for _, entry := range s.book.Entries(dim) {
			if strings.Contains(text, strings.ToLower(entry.Name)) {
				result.Score += entry.PopularityWeight * weight
				result.Matches = append(result.Matches,
					fmt.Sprintf("on-trend %s: %s", dim, entry.Name))
			}
		}
	}

	if brand, ok := s.matchBrand(item, text, s.book.luxuryBrands); ok {
		result.Score += luxuryBrandBonus
		result.Matches = append(result.Matches, fmt.Sprintf("luxury brand: %s", brand))
	} else if brand, ok := s.matchBrand(item, text, s.book.premiumBrands); ok {
		result.Score += premiumBrandBonus
		result.Matches = append(result.Matches, fmt.Sprintf("premium brand: %s", brand))
	}

	result.Score = clamp(result.Score, 0, 100)
	return result
}

// matchBrand checks the item's brand field and its descriptive text against
// a normalized brand list.
func (s *Scorer) matchBrand(item model.Item, text string, brands []string) (string, bool) {
	itemBrand := strings.ToLower(item.Brand)
	for _, brand := range brands {
		if itemBrand == brand || strings.Contains(itemBrand, brand) || strings.Contains(text, brand) {
			return brand, true
		}
	}
	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
