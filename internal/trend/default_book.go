package trend

import "github.com/glamstack/attire/internal/model"

// DefaultBook returns the stock trend reference dataset. Weights reflect
// current popularity within each dimension; refreshing the tables is a data
// change, not a code change.
func DefaultBook() *Book {
	book, err := NewBook(defaultEntries(), defaultPremiumBrands(), defaultLuxuryBrands())
	if err != nil {
		// The stock tables are compile-time constants; a validation failure
		// here is a programming error.
		panic(err)
	}
	return book
}

func defaultEntries() []model.TrendEntry {
	return []model.TrendEntry{
		// Colors
		{Name: "butter yellow", Dimension: model.DimensionColor, PopularityWeight: 0.95},
		{Name: "sage green", Dimension: model.DimensionColor, PopularityWeight: 0.90},
		{Name: "cherry red", Dimension: model.DimensionColor, PopularityWeight: 0.88},
		{Name: "chocolate brown", Dimension: model.DimensionColor, PopularityWeight: 0.85},
		{Name: "powder blue", Dimension: model.DimensionColor, PopularityWeight: 0.80},
		{Name: "lavender", Dimension: model.DimensionColor, PopularityWeight: 0.75},
		{Name: "burgundy", Dimension: model.DimensionColor, PopularityWeight: 0.72},
		{Name: "cream", Dimension: model.DimensionColor, PopularityWeight: 0.70},

		// Patterns
		{Name: "animal print", Dimension: model.DimensionPattern, PopularityWeight: 0.90},
		{Name: "leopard", Dimension: model.DimensionPattern, PopularityWeight: 0.88},
		{Name: "polka dot", Dimension: model.DimensionPattern, PopularityWeight: 0.82},
		{Name: "gingham", Dimension: model.DimensionPattern, PopularityWeight: 0.80},
		{Name: "pinstripe", Dimension: model.DimensionPattern, PopularityWeight: 0.78},
		{Name: "floral", Dimension: model.DimensionPattern, PopularityWeight: 0.75},
		{Name: "plaid", Dimension: model.DimensionPattern, PopularityWeight: 0.70},

		// Fabrics
		{Name: "suede", Dimension: model.DimensionFabric, PopularityWeight: 0.92},
		{Name: "linen", Dimension: model.DimensionFabric, PopularityWeight: 0.88},
		{Name: "satin", Dimension: model.DimensionFabric, PopularityWeight: 0.85},
		{Name: "mesh", Dimension: model.DimensionFabric, PopularityWeight: 0.80},
		{Name: "cashmere", Dimension: model.DimensionFabric, PopularityWeight: 0.78},
		{Name: "leather", Dimension: model.DimensionFabric, PopularityWeight: 0.75},
		{Name: "crochet", Dimension: model.DimensionFabric, PopularityWeight: 0.72},
		{Name: "denim", Dimension: model.DimensionFabric, PopularityWeight: 0.65},

		// Silhouettes
		{Name: "oversized", Dimension: model.DimensionSilhouette, PopularityWeight: 0.90},
		{Name: "wide leg", Dimension: model.DimensionSilhouette, PopularityWeight: 0.88},
		{Name: "barrel", Dimension: model.DimensionSilhouette, PopularityWeight: 0.85},
		{Name: "drop waist", Dimension: model.DimensionSilhouette, PopularityWeight: 0.82},
		{Name: "boxy", Dimension: model.DimensionSilhouette, PopularityWeight: 0.78},
		{Name: "a-line", Dimension: model.DimensionSilhouette, PopularityWeight: 0.75},
		{Name: "high waisted", Dimension: model.DimensionSilhouette, PopularityWeight: 0.72},
		{Name: "cropped", Dimension: model.DimensionSilhouette, PopularityWeight: 0.70},
	}
}

func defaultPremiumBrands() []string {
	return []string{
		"Reformation",
		"Ganni",
		"Sandro",
		"Maje",
		"Theory",
		"Vince",
		"Acne Studios",
		"A.P.C.",
		"Staud",
		"Aritzia",
	}
}

func defaultLuxuryBrands() []string {
	return []string{
		"Gucci",
		"Prada",
		"Chanel",
		"Dior",
		"Saint Laurent",
		"Bottega Veneta",
		"Loewe",
		"The Row",
		"Miu Miu",
		"Celine",
		"Hermes",
		"Valentino",
	}
}
