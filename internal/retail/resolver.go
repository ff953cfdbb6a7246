// Package retail routes catalog items to outbound purchase links.
package retail

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// LinkResolver produces an outbound purchase URL for an item. The curation
// engine consumes this optionally, per item; it never fetches anything.
type LinkResolver interface {
	Resolve(item model.Item) string
}

// TableResolver implements LinkResolver with a brand-to-retailer routing
// table. Unrouted brands fall back to a retail search URL.
type TableResolver struct {
	routes   map[string]string // normalized brand -> search URL template
	fallback string
}

// NewTableResolver creates a resolver with the given routes. Route values
// are fmt templates taking one query-escaped search term.
func NewTableResolver(routes map[string]string, fallback string) *TableResolver {
	normalized := make(map[string]string, len(routes))
	for brand, route := range routes {
		normalized[strings.ToLower(brand)] = route
	}
	return &TableResolver{routes: normalized, fallback: fallback}
}

// NewDefaultResolver creates a resolver with the stock routing table.
func NewDefaultResolver() *TableResolver {
	return NewTableResolver(defaultRoutes(), defaultFallback)
}

// Resolve returns the item's own source URL when present, otherwise routes
// by brand, otherwise falls back to a general retail search.
func (r *TableResolver) Resolve(item model.Item) string {
	if item.SourceURL != "" {
		return item.SourceURL
	}

	query := url.QueryEscape(strings.TrimSpace(item.Brand + " " + item.Name))

	if route, ok := r.routes[strings.ToLower(item.Brand)]; ok {
		return fmt.Sprintf(route, url.QueryEscape(item.Name))
	}

	return fmt.Sprintf(r.fallback, query)
}

const defaultFallback = "https://www.google.com/search?tbm=shop&q=%s"

func defaultRoutes() map[string]string {
	return map[string]string{
		"Gucci":          "https://www.gucci.com/us/en/search?searchString=%s",
		"Prada":          "https://www.prada.com/us/en/search.html?q=%s",
		"Saint Laurent":  "https://www.ysl.com/en-us/search?q=%s",
		"Bottega Veneta": "https://www.bottegaveneta.com/en-us/search?q=%s",
		"Reformation":    "https://www.thereformation.com/search?q=%s",
		"Ganni":          "https://www.ganni.com/en-us/search?q=%s",
		"Aritzia":        "https://www.aritzia.com/us/en/search?q=%s",
		"Theory":         "https://www.theory.com/search?q=%s",
		"Zara":           "https://www.zara.com/us/en/search?searchTerm=%s",
		"H&M":            "https://www2.hm.com/en_us/search-results.html?q=%s",
		"Uniqlo":         "https://www.uniqlo.com/us/en/search?q=%s",
		"Nike":           "https://www.nike.com/w?q=%s",
		"Adidas":         "https://www.adidas.com/us/search?q=%s",
		"Levi's":         "https://www.levi.com/US/en_US/search/%s",
	}
}
