// Package outfit assembles ranked items into complete looks and derives the
// qualitative commentary that accompanies them.
package outfit

import (
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// trendNameThreshold is the mean trend score above which an outfit's name
// gets the "Trending" prefix.
const trendNameThreshold = 70

// shape is a fixed pattern of required and optional category slots defining
// one style of complete outfit. Selection within each slot is greedy: the
// single highest occasion-scored item wins. No combinatorial search across
// slots is attempted.
type shape struct {
	id       string
	label    string
	required []model.Category
	optional []model.Category
}

// shapes are attempted in order and independently; each that can fill its
// required slots yields an outfit.
var shapes = []shape{
	{
		id:       "separates",
		label:    "Separates",
		required: []model.Category{model.CategoryTops, model.CategoryBottoms},
		optional: []model.Category{model.CategoryShoes, model.CategoryAccessories},
	},
	{
		id:       "dress",
		label:    "Dress Look",
		required: []model.Category{model.CategoryDresses},
		optional: []model.Category{model.CategoryShoes, model.CategoryAccessories},
	},
}

// Assembler builds outfit candidates from occasion-ranked items.
type Assembler struct{}

// NewAssembler creates an assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble attempts each shape against the ranked items and returns every
// outfit whose required slots could be filled. An empty result means the
// catalog lacks coverage for this request; it is not an error. Item slices
// in byCategory must already be sorted by occasion score.
func (a *Assembler) Assemble(byCategory map[model.Category]model.ScoredItems, occasionKey string) []model.Outfit {
	var outfits []model.Outfit

	for _, sh := range shapes {
		picked := make([]model.ScoredItem, 0, len(sh.required)+len(sh.optional))

		filled := true
		for _, cat := range sh.required {
			top := byCategory[cat].Top()
			if top == nil {
				filled = false
				break
			}
			picked = append(picked, *top)
		}
		if !filled {
			continue
		}

		for _, cat := range sh.optional {
			if top := byCategory[cat].Top(); top != nil {
				picked = append(picked, *top)
			}
		}

		outfits = append(outfits, a.build(sh, picked, occasionKey))
	}

	return outfits
}

// build finalizes one outfit: the total price is always recomputed from the
// chosen items, never supplied independently.
func (a *Assembler) build(sh shape, items []model.ScoredItem, occasionKey string) model.Outfit {
	var totalPrice, trendSum float64
	for _, item := range items {
		totalPrice += item.Price
		trendSum += item.TrendScore
	}
	meanTrend := trendSum / float64(len(items))

	name := fmt.Sprintf("%s %s", titleCase(occasionKey), sh.label)
	if meanTrend > trendNameThreshold {
		name = "Trending " + name
	}

	return model.Outfit{
		ID:          fmt.Sprintf("%s-%s", occasionKey, sh.id),
		Name:        name,
		Description: fmt.Sprintf("A complete look curated for %s occasions.", occasionKey),
		Style:       occasionKey,
		Items:       items,
		TotalPrice:  totalPrice,
		TrendScore:  meanTrend,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
