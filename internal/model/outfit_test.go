package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validOutfit() Outfit {
	return Outfit{
		ID:    "casual-separates",
		Name:  "Casual Separates",
		Style: "casual",
		Items: []ScoredItem{
			{Item: Item{ID: "a", Name: "Tee", Category: CategoryTops, Price: 25}},
			{Item: Item{ID: "b", Name: "Jeans", Category: CategoryBottoms, Price: 75}},
		},
		TotalPrice: 100,
		TrendScore: 50,
	}
}

func TestOutfit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Outfit)
		wantErr bool
	}{
		{
			name:   "valid outfit",
			mutate: func(_ *Outfit) {},
		},
		{
			name:    "total price must match item sum",
			mutate:  func(o *Outfit) { o.TotalPrice = 150 },
			wantErr: true,
		},
		{
			name:    "no items",
			mutate:  func(o *Outfit) { o.Items = nil; o.TotalPrice = 0 },
			wantErr: true,
		},
		{
			name: "duplicate slot category",
			mutate: func(o *Outfit) {
				o.Items = append(o.Items, ScoredItem{
					Item: Item{ID: "c", Name: "Blouse", Category: CategoryTops, Price: 0},
				})
			},
			wantErr: true,
		},
		{
			name:    "trend score out of range",
			mutate:  func(o *Outfit) { o.TrendScore = 101 },
			wantErr: true,
		},
		{
			name:   "small float drift tolerated",
			mutate: func(o *Outfit) { o.TotalPrice = 100.0000001 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOutfit()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItem_Validate(t *testing.T) {
	valid := Item{ID: "a", Name: "Shirt", Price: 10}
	assert.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.Error(t, noID.Validate())

	negativePrice := valid
	negativePrice.Price = -1
	assert.Error(t, negativePrice.Validate())

	badCategory := valid
	badCategory.Category = "hats"
	assert.Error(t, badCategory.Validate())
}

func TestRequest_Validate(t *testing.T) {
	assert.NoError(t, (&Request{}).Validate())

	budget := 100.0
	assert.NoError(t, (&Request{Budget: &budget}).Validate())

	negative := -1.0
	assert.Error(t, (&Request{Budget: &negative}).Validate())
}
