// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// Category identifies the normalized slot a catalog item can fill in an outfit.
type Category string

// Category constants.
const (
	CategoryTops          Category = "tops"
	CategoryBottoms       Category = "bottoms"
	CategoryDresses       Category = "dresses"
	CategoryOuterwear     Category = "outerwear"
	CategoryShoes         Category = "shoes"
	CategoryAccessories   Category = "accessories"
	CategoryUncategorized Category = "uncategorized"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryTops,
		CategoryBottoms,
		CategoryDresses,
		CategoryOuterwear,
		CategoryShoes,
		CategoryAccessories,
	}
}

// Valid reports whether c is a known category, including uncategorized.
func (c Category) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses,
		CategoryOuterwear, CategoryShoes, CategoryAccessories,
		CategoryUncategorized:
		return true
	}
	return false
}

// Item represents a single catalog product record.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    Category `json:"category"` // CategoryUncategorized until classified
	Description string   `json:"description"`
	ImageRef    string   `json:"imageRef,omitempty"`
	SourceURL   string   `json:"sourceUrl,omitempty"`
	Price       float64  `json:"price"`
}

// SearchText returns the lower-cased name+description text that all keyword
// matching runs against.
func (i *Item) SearchText() string {
	return strings.ToLower(i.Name + " " + i.Description)
}

// Validate ensures the item has valid data.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("item ID is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name is required")
	}
	if i.Price < 0 {
		return fmt.Errorf("item price must be non-negative, got %.2f", i.Price)
	}
	if i.Category != "" && !i.Category.Valid() {
		return fmt.Errorf("unknown category %q", i.Category)
	}
	return nil
}
