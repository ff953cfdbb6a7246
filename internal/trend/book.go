// Package trend scores catalog items against a curated table of currently
// popular colors, patterns, fabrics, silhouettes, and brand tiers.
package trend

import (
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// Book is the immutable trend reference dataset. It is loaded once at
// process start and shared by every scorer call; it is never mutated, so it
// is safe for unlimited concurrent readers.
type Book struct {
	byDimension   map[model.TrendDimension][]model.TrendEntry
	premiumBrands []string
	luxuryBrands  []string
}

// scanOrder fixes the order dimensions are scanned in, which also fixes the
// order match reasons are reported in.
var scanOrder = []model.TrendDimension{
	model.DimensionColor,
	model.DimensionPattern,
	model.DimensionFabric,
	model.DimensionSilhouette,
}

// NewBook builds a trend book from entries and brand tier lists. Every entry
// is validated; brand names are normalized to lower case.
func NewBook(entries []model.TrendEntry, premiumBrands, luxuryBrands []string) (*Book, error) {
	byDimension := make(map[model.TrendDimension][]model.TrendEntry)

	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("trend entry at index %d: %w", i, err)
		}
		byDimension[entry.Dimension] = append(byDimension[entry.Dimension], entry)
	}

	return &Book{
		byDimension:   byDimension,
		premiumBrands: lowerAll(premiumBrands),
		luxuryBrands:  lowerAll(luxuryBrands),
	}, nil
}

// Entries returns the entries for one dimension in table order.
func (b *Book) Entries(dim model.TrendDimension) []model.TrendEntry {
	return b.byDimension[dim]
}

// PremiumBrands returns the normalized premium brand list.
func (b *Book) PremiumBrands() []string {
	return b.premiumBrands
}

// LuxuryBrands returns the normalized luxury brand list.
func (b *Book) LuxuryBrands() []string {
	return b.luxuryBrands
}

// EntryCount returns the total number of trend entries loaded.
func (b *Book) EntryCount() int {
	n := 0
	for _, entries := range b.byDimension {
		n += len(entries)
	}
	return n
}

func lowerAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(n)
	}
	return out
}
