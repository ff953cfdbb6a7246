// Package catalog ingests externally supplied catalogs. Records arrive in
// loosely varying shapes depending on the provider, so parsing is tolerant
// about field names rather than bound to a rigid schema.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/glamstack/attire/internal/common"
	"github.com/glamstack/attire/internal/model"
)

// ParseItems parses a raw catalog document into items. The document may be
// a bare JSON array or an object wrapping one under "items", "products", or
// "catalog". Field names are matched against the aliases each provider has
// been observed to use.
func ParseItems(data []byte) ([]model.Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, common.InvalidInputf("catalog is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	records := root
	if root.IsObject() {
		for _, key := range []string{"items", "products", "catalog"} {
			if arr := root.Get(key); arr.IsArray() {
				records = arr
				break
			}
		}
	}

	if !records.IsArray() {
		return nil, common.InvalidInputf("catalog must be an array of item records")
	}

	var (
		items    []model.Item
		parseErr error
		index    int
	)

	records.ForEach(func(_, rec gjson.Result) bool {
		item, err := parseItem(rec, index)
		if err != nil {
			parseErr = fmt.Errorf("catalog record %d: %w", index, err)
			return false
		}
		items = append(items, item)
		index++
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}

	return items, nil
}

func parseItem(rec gjson.Result, index int) (model.Item, error) {
	if !rec.IsObject() {
		return model.Item{}, common.InvalidInputf("record is not an object")
	}

	item := model.Item{
		ID:          firstString(rec, "id", "itemId", "item_id", "sku"),
		Name:        firstString(rec, "name", "title"),
		Brand:       firstString(rec, "brand", "vendor", "label"),
		Description: firstString(rec, "description", "details"),
		ImageRef:    firstString(rec, "imageRef", "image", "imageUrl", "image_url"),
		SourceURL:   firstString(rec, "sourceUrl", "source_url", "url", "link"),
	}

	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", index+1)
	}

	price, err := parsePrice(rec.Get("price"))
	if err != nil {
		return model.Item{}, err
	}
	item.Price = price

	// Provider-supplied categories are kept when valid; anything else is
	// left for the classifier.
	if cat := model.Category(strings.ToLower(firstString(rec, "category", "type"))); cat.Valid() {
		item.Category = cat
	}

	if err := item.Validate(); err != nil {
		return model.Item{}, common.InvalidInputf("%v", err)
	}

	return item, nil
}

// parsePrice accepts plain numbers or numeric strings like "128" and
// "$128.00". Anything else fails fast; prices are never silently coerced.
func parsePrice(v gjson.Result) (float64, error) {
	switch v.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		return v.Float(), nil
	case gjson.String:
		raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v.String()), "$"))
		raw = strings.ReplaceAll(raw, ",", "")
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, common.InvalidInputf("price %q is not numeric", v.String())
		}
		return price, nil
	default:
		return 0, common.InvalidInputf("price has unsupported type %s", v.Type)
	}
}

func firstString(rec gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := rec.Get(key); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
