package model

import "fmt"

// TrendDimension identifies which attribute of an item a trend entry describes.
type TrendDimension string

// Trend dimension constants.
const (
	DimensionColor      TrendDimension = "color"
	DimensionPattern    TrendDimension = "pattern"
	DimensionFabric     TrendDimension = "fabric"
	DimensionSilhouette TrendDimension = "silhouette"
)

// TrendEntry is a single row of the curated trend reference table. Entries
// are loaded once at startup and never mutated.
type TrendEntry struct {
	Name             string
	Dimension        TrendDimension
	PopularityWeight float64 // 0.0-1.0
}

// Validate ensures the trend entry has valid data.
func (e *TrendEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("trend entry name is required")
	}

	if e.PopularityWeight < 0.0 || e.PopularityWeight > 1.0 {
		return fmt.Errorf("popularity weight must be between 0.0 and 1.0, got %.2f", e.PopularityWeight)
	}

	switch e.Dimension {
	case DimensionColor, DimensionPattern, DimensionFabric, DimensionSilhouette:
	default:
		return fmt.Errorf("unknown trend dimension %q", e.Dimension)
	}

	return nil
}
