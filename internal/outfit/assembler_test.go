package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamstack/attire/internal/model"
)

func scoredItem(id string, cat model.Category, price, trendScore, occasionScore float64) model.ScoredItem {
	return model.ScoredItem{
		Item:          model.Item{ID: id, Name: id, Category: cat, Price: price},
		TrendScore:    trendScore,
		OccasionScore: occasionScore,
	}
}

func TestAssembler_SeparatesShape(t *testing.T) {
	a := NewAssembler()

	byCategory := map[model.Category]model.ScoredItems{
		model.CategoryTops: {
			scoredItem("top-1", model.CategoryTops, 40, 60, 90),
			scoredItem("top-2", model.CategoryTops, 30, 50, 70),
		},
		model.CategoryBottoms: {
			scoredItem("bottom-1", model.CategoryBottoms, 60, 40, 80),
		},
		model.CategoryShoes: {
			scoredItem("shoe-1", model.CategoryShoes, 90, 50, 85),
		},
		model.CategoryAccessories: {
			scoredItem("bag-1", model.CategoryAccessories, 110, 30, 75),
		},
	}

	outfits := a.Assemble(byCategory, "casual")
	require.Len(t, outfits, 1)

	o := outfits[0]
	assert.Equal(t, "casual-separates", o.ID)
	assert.Equal(t, "casual", o.Style)
	require.Len(t, o.Items, 4)
	assert.Equal(t, "top-1", o.Items[0].ID) // highest-ranked top wins
	assert.InDelta(t, 40+60+90+110, o.TotalPrice, 0.0001)
	assert.InDelta(t, (60+40+50+30)/4.0, o.TrendScore, 0.0001)
	assert.NoError(t, o.Validate())
}

func TestAssembler_DressShape(t *testing.T) {
	a := NewAssembler()

	byCategory := map[model.Category]model.ScoredItems{
		model.CategoryDresses: {
			scoredItem("dress-1", model.CategoryDresses, 100, 80, 95),
		},
		model.CategoryShoes: {
			scoredItem("shoe-1", model.CategoryShoes, 50, 60, 85),
		},
	}

	outfits := a.Assemble(byCategory, "formal")
	require.Len(t, outfits, 1)

	o := outfits[0]
	assert.Equal(t, "formal-dress", o.ID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "dress-1", o.Items[0].ID)
	assert.Equal(t, "shoe-1", o.Items[1].ID)
	assert.InDelta(t, 150, o.TotalPrice, 0.0001)
}

func TestAssembler_BothShapesCanSucceed(t *testing.T) {
	a := NewAssembler()

	byCategory := map[model.Category]model.ScoredItems{
		model.CategoryTops:    {scoredItem("top-1", model.CategoryTops, 40, 50, 80)},
		model.CategoryBottoms: {scoredItem("bottom-1", model.CategoryBottoms, 60, 50, 80)},
		model.CategoryDresses: {scoredItem("dress-1", model.CategoryDresses, 120, 50, 80)},
	}

	outfits := a.Assemble(byCategory, "casual")
	require.Len(t, outfits, 2)
	assert.Equal(t, "casual-separates", outfits[0].ID)
	assert.Equal(t, "casual-dress", outfits[1].ID)
}

func TestAssembler_MissingRequiredSlotsYieldNothing(t *testing.T) {
	a := NewAssembler()

	tests := []struct {
		byCategory map[model.Category]model.ScoredItems
		name       string
		want       int
	}{
		{
			name: "no tops and no dresses",
			byCategory: map[model.Category]model.ScoredItems{
				model.CategoryBottoms: {scoredItem("bottom-1", model.CategoryBottoms, 60, 50, 80)},
				model.CategoryShoes:   {scoredItem("shoe-1", model.CategoryShoes, 50, 50, 80)},
			},
			want: 0,
		},
		{
			name: "tops without bottoms",
			byCategory: map[model.Category]model.ScoredItems{
				model.CategoryTops: {scoredItem("top-1", model.CategoryTops, 40, 50, 80)},
			},
			want: 0,
		},
		{
			name:       "empty catalog",
			byCategory: map[model.Category]model.ScoredItems{},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, a.Assemble(tt.byCategory, "casual"), tt.want)
		})
	}
}

func TestAssembler_OptionalSlotsAreOptional(t *testing.T) {
	a := NewAssembler()

	byCategory := map[model.Category]model.ScoredItems{
		model.CategoryDresses: {scoredItem("dress-1", model.CategoryDresses, 100, 50, 80)},
	}

	outfits := a.Assemble(byCategory, "formal")
	require.Len(t, outfits, 1)
	assert.Len(t, outfits[0].Items, 1)
}

func TestAssembler_TrendingNamePrefix(t *testing.T) {
	a := NewAssembler()

	trendy := map[model.Category]model.ScoredItems{
		model.CategoryDresses: {scoredItem("dress-1", model.CategoryDresses, 100, 90, 80)},
	}
	classic := map[model.Category]model.ScoredItems{
		model.CategoryDresses: {scoredItem("dress-2", model.CategoryDresses, 100, 40, 80)},
	}

	assert.Equal(t, "Trending Vacation Dress Look", a.Assemble(trendy, "vacation")[0].Name)
	assert.Equal(t, "Vacation Dress Look", a.Assemble(classic, "vacation")[0].Name)
}
