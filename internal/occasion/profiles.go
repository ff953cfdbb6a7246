// Package occasion scores how well classified items fit a requested
// occasion using per-occasion key-piece, avoid-piece, and palette tables.
package occasion

import "github.com/glamstack/attire/internal/model"

// Occasion keys.
const (
	KeyCasual   = "casual"
	KeyBusiness = "business"
	KeyFestival = "festival"
	KeyFormal   = "formal"
	KeyVacation = "vacation"
)

// DefaultProfiles returns the stock occasion reference table. Profiles are
// loaded once at startup and read-only thereafter.
func DefaultProfiles() []model.OccasionProfile {
	return []model.OccasionProfile{
		{
			Key: KeyCasual,
			KeyPieces: []string{
				"jeans", "t-shirt", "tee", "sneaker", "hoodie",
				"denim jacket", "tank", "shorts",
			},
			AvoidPieces: []string{
				"gown", "tuxedo", "stiletto",
			},
			ColorPalette: []string{
				"white", "navy", "gray", "olive", "denim",
			},
			StylingTip: "Keep it relaxed: build around comfortable basics and let one piece do the talking.",
		},
		{
			Key: KeyBusiness,
			KeyPieces: []string{
				"blazer", "trousers", "button-down", "loafer",
				"pencil skirt", "shift dress", "oxford",
			},
			AvoidPieces: []string{
				"graphic tee", "ripped jeans", "flip flop", "crop top",
			},
			ColorPalette: []string{
				"navy", "charcoal", "white", "camel", "black",
			},
			StylingTip: "Stick to tailored lines and a restrained palette; one refined accent piece is plenty.",
		},
		{
			Key: KeyFestival,
			KeyPieces: []string{
				"fringe", "crochet", "denim shorts", "boot", "bandana",
				"crop top", "kimono",
			},
			AvoidPieces: []string{
				"blazer", "loafer", "pencil skirt",
			},
			ColorPalette: []string{
				"turquoise", "mustard", "rust", "pink", "gold",
			},
			StylingTip: "Layer textures and go bold: festival looks reward fringe, crochet, and statement accessories.",
		},
		{
			Key: KeyFormal,
			KeyPieces: []string{
				"gown", "suit", "heel", "silk", "clutch", "tuxedo",
				"cocktail dress",
			},
			AvoidPieces: []string{
				"sneaker", "hoodie", "denim", "graphic tee",
			},
			ColorPalette: []string{
				"black", "champagne", "emerald", "burgundy", "navy",
			},
			StylingTip: "Let the silhouette carry the look; keep jewelry and accessories understated.",
		},
		{
			Key: KeyVacation,
			KeyPieces: []string{
				"sundress", "sandal", "linen", "swimsuit", "straw hat",
				"shorts", "espadrille",
			},
			AvoidPieces: []string{
				"wool coat", "turtleneck", "puffer",
			},
			ColorPalette: []string{
				"coral", "aqua", "white", "sand", "sky blue",
			},
			StylingTip: "Pack light, breathable layers in sun-friendly colors that mix and match.",
		},
	}
}
