package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamstack/attire/internal/common"
	"github.com/glamstack/attire/internal/model"
)

func TestParseItems_BareArray(t *testing.T) {
	data := []byte(`[
		{"id": "a1", "name": "Linen Shirt", "brand": "Uniqlo", "price": 39.9, "category": "tops"},
		{"id": "a2", "name": "Suede Loafer", "price": 150}
	]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "Linen Shirt", items[0].Name)
	assert.Equal(t, "Uniqlo", items[0].Brand)
	assert.InDelta(t, 39.9, items[0].Price, 0.0001)
	assert.Equal(t, model.CategoryTops, items[0].Category)

	// No category supplied; left for the classifier.
	assert.Equal(t, model.Category(""), items[1].Category)
}

func TestParseItems_WrappedObject(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"items key", `{"items": [{"id": "a", "name": "Tee", "price": 10}]}`},
		{"products key", `{"products": [{"id": "a", "name": "Tee", "price": 10}]}`},
		{"catalog key", `{"catalog": [{"id": "a", "name": "Tee", "price": 10}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseItems([]byte(tt.data))
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "a", items[0].ID)
		})
	}
}

func TestParseItems_FieldAliases(t *testing.T) {
	data := []byte(`[{
		"sku": "SKU-9",
		"title": "Slip Dress",
		"vendor": "Reformation",
		"details": "silk slip dress",
		"image_url": "https://cdn.example.com/dress.jpg",
		"link": "https://example.com/dress",
		"type": "dresses",
		"price": "248.00"
	}]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "SKU-9", item.ID)
	assert.Equal(t, "Slip Dress", item.Name)
	assert.Equal(t, "Reformation", item.Brand)
	assert.Equal(t, "silk slip dress", item.Description)
	assert.Equal(t, "https://cdn.example.com/dress.jpg", item.ImageRef)
	assert.Equal(t, "https://example.com/dress", item.SourceURL)
	assert.Equal(t, model.CategoryDresses, item.Category)
	assert.InDelta(t, 248, item.Price, 0.0001)
}

func TestParseItems_StringPrices(t *testing.T) {
	data := []byte(`[
		{"name": "A", "price": "128"},
		{"name": "B", "price": "$1,234.50"},
		{"name": "C", "price": " $45 "}
	]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.InDelta(t, 128, items[0].Price, 0.0001)
	assert.InDelta(t, 1234.50, items[1].Price, 0.0001)
	assert.InDelta(t, 45, items[2].Price, 0.0001)
}

func TestParseItems_GeneratedIDs(t *testing.T) {
	data := []byte(`[
		{"name": "First", "price": 10},
		{"name": "Second", "price": 20}
	]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, "item-2", items[1].ID)
}

func TestParseItems_UnknownCategoryIsDropped(t *testing.T) {
	data := []byte(`[{"name": "Fedora", "category": "hats", "price": 30}]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	assert.Equal(t, model.Category(""), items[0].Category)
}

func TestParseItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid JSON", `{"items": [`},
		{"not an array", `{"foo": "bar"}`},
		{"scalar document", `42`},
		{"record not an object", `[42]`},
		{"non-numeric price", `[{"name": "Tee", "price": "call us"}]`},
		{"boolean price", `[{"name": "Tee", "price": true}]`},
		{"negative price", `[{"name": "Tee", "price": -5}]`},
		{"missing name", `[{"id": "a", "price": 10}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems([]byte(tt.data))
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestParseItems_EmptyArray(t *testing.T) {
	items, err := ParseItems([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, items)
}
