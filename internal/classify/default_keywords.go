package classify

import "github.com/glamstack/attire/internal/model"

// DefaultKeywordSets returns the stock lexical cues for each category.
// Dress terms outrank top terms so that "shirt dress" lands in dresses, and
// top terms outrank bottom terms so that "t-shirt and jeans set" favors the
// garment named first in the catalog text.
func DefaultKeywordSets() []KeywordSet {
	return []KeywordSet{
		{
			Category: model.CategoryDresses,
			Priority: 100,
			Keywords: []string{
				"dress", "gown", "frock", "sundress", "maxi", "midi dress",
				"slip dress", "jumpsuit", "romper",
			},
		},
		{
			Category: model.CategoryTops,
			Priority: 90,
			Keywords: []string{
				"top", "shirt", "blouse", "tee", "t-shirt", "tank",
				"camisole", "sweater", "hoodie", "cardigan", "bodysuit",
				"crop", "pullover", "turtleneck", "polo",
			},
		},
		{
			Category: model.CategoryBottoms,
			Priority: 80,
			Keywords: []string{
				"pants", "jeans", "trousers", "shorts", "skirt", "leggings",
				"joggers", "chinos", "culottes", "slacks", "denim",
			},
		},
		{
			Category: model.CategoryShoes,
			Priority: 70,
			Keywords: []string{
				"shoe", "sneaker", "boot", "heel", "sandal", "loafer",
				"pump", "flat", "mule", "oxford", "trainer", "slide",
			},
		},
		{
			Category: model.CategoryOuterwear,
			Priority: 60,
			Keywords: []string{
				"jacket", "coat", "blazer", "parka", "trench", "windbreaker",
				"puffer", "vest", "bomber", "anorak", "overcoat",
			},
		},
		{
			Category: model.CategoryAccessories,
			Priority: 50,
			Keywords: []string{
				"bag", "purse", "handbag", "tote", "clutch", "belt", "scarf",
				"hat", "cap", "beanie", "necklace", "earring", "bracelet",
				"ring", "sunglasses", "watch", "wallet", "jewelry",
			},
		},
	}
}
