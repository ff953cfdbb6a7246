// Package classify assigns raw catalog items to normalized outfit categories.
package classify

import (
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// Classifier defines the contract for item categorization. The default
// implementation is lexical; a future implementation could swap in a real
// text classifier without touching the scorer or assembler contracts.
type Classifier interface {
	Classify(item model.Item) model.Category
}

// KeywordSet maps a list of lexical cues to one category. Sets are checked
// in priority order and the first matching set wins.
type KeywordSet struct {
	Category model.Category
	Keywords []string
	Priority int // Higher priority sets are checked first
}

// KeywordClassifier implements Classifier with case-insensitive substring
// matching over an item's name and description.
type KeywordClassifier struct {
	defaultCategory model.Category
	sets            []KeywordSet
}

// Option configures a KeywordClassifier.
type Option func(*KeywordClassifier)

// WithDefaultCategory overrides the bucket unclassifiable items fall into.
// The stock default is accessories, where decorative and miscellaneous items
// most commonly belong.
func WithDefaultCategory(c model.Category) Option {
	return func(kc *KeywordClassifier) {
		kc.defaultCategory = c
	}
}

// NewKeywordClassifier creates a classifier from the given keyword sets.
func NewKeywordClassifier(sets []KeywordSet, opts ...Option) *KeywordClassifier {
	sorted := make([]KeywordSet, len(sets))
	copy(sorted, sets)

	// Sort by priority (highest first)
	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Priority > sorted[i].Priority {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	kc := &KeywordClassifier{
		sets:            sorted,
		defaultCategory: model.CategoryAccessories,
	}

	for _, opt := range opts {
		opt(kc)
	}

	return kc
}

// NewDefaultClassifier creates a classifier with the stock keyword sets.
func NewDefaultClassifier(opts ...Option) *KeywordClassifier {
	return NewKeywordClassifier(DefaultKeywordSets(), opts...)
}

// Classify assigns the item to the first category whose keyword set matches
// its text. Items matching nothing get the configured default category;
// there is no failure mode.
func (kc *KeywordClassifier) Classify(item model.Item) model.Category {
	text := item.SearchText()

	for _, set := range kc.sets {
		for _, keyword := range set.Keywords {
			if strings.Contains(text, keyword) {
				return set.Category
			}
		}
	}

	return kc.defaultCategory
}

// DefaultCategory returns the bucket unclassifiable items fall into.
func (kc *KeywordClassifier) DefaultCategory() model.Category {
	return kc.defaultCategory
}
