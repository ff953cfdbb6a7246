// Package engine implements the core curation engine: catalog plus
// preferences in, ranked priced outfits out.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glamstack/attire/internal/classify"
	"github.com/glamstack/attire/internal/common"
	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/occasion"
	"github.com/glamstack/attire/internal/outfit"
	"github.com/glamstack/attire/internal/retail"
	"github.com/glamstack/attire/internal/trend"
)

// Engine orchestrates the curation pipeline: classify, trend-score,
// occasion-score, assemble, annotate. It holds only immutable reference
// data, so one engine can serve any number of concurrent requests.
type Engine struct {
	classifier classify.Classifier
	trends     *trend.Scorer
	occasions  *occasion.Matcher
	assembler  *outfit.Assembler
	annotator  *outfit.Annotator
	links      retail.LinkResolver
}

// Config holds optional engine collaborators.
type Config struct {
	// LinkResolver fills in purchase URLs for items that lack one.
	// Nil disables link resolution.
	LinkResolver retail.LinkResolver
}

// New creates an engine with the given scoring dependencies.
func New(classifier classify.Classifier, trends *trend.Scorer, occasions *occasion.Matcher) *Engine {
	return NewWithConfig(classifier, trends, occasions, Config{})
}

// NewWithConfig creates an engine with optional collaborators.
func NewWithConfig(classifier classify.Classifier, trends *trend.Scorer, occasions *occasion.Matcher, cfg Config) *Engine {
	return &Engine{
		classifier: classifier,
		trends:     trends,
		occasions:  occasions,
		assembler:  outfit.NewAssembler(),
		annotator:  outfit.NewAnnotator(),
		links:      cfg.LinkResolver,
	}
}

// NewDefault creates an engine wired with the stock keyword sets, trend
// book, occasion profiles, and retailer routing table.
func NewDefault() *Engine {
	return NewWithConfig(
		classify.NewDefaultClassifier(),
		trend.NewDefaultScorer(),
		occasion.NewDefaultMatcher(),
		Config{LinkResolver: retail.NewDefaultResolver()},
	)
}

// Occasions exposes the engine's occasion matcher for callers that need to
// inspect profiles.
func (e *Engine) Occasions() *occasion.Matcher {
	return e.occasions
}

// Curate runs the full pipeline for one request. It never mutates the
// caller's catalog records; scoring works on a private per-request copy. An
// empty outfit list is a normal result meaning the catalog lacks coverage
// for this request.
func (e *Engine) Curate(ctx context.Context, req model.Request, catalog []model.Item) (*model.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, common.InvalidInputf("%v", err)
	}

	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}

	occasionKey := strings.ToLower(strings.TrimSpace(req.Occasion))
	if occasionKey == "" {
		occasionKey = occasion.Detect(req.Prompt, req.StyleKeywords)
	}

	slog.Debug("starting curation",
		"occasion", occasionKey,
		"catalog_size", len(catalog),
		"budget", req.Budget)

	scored := make(model.ScoredItems, 0, len(catalog))
	for i, item := range catalog {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Items priced above the budget can never appear in an
		// affordable outfit; drop them before scoring.
		if req.Budget != nil && item.Price > *req.Budget {
			continue
		}

		// item is a working copy; the provider's record is untouched.
		if item.Category == "" || item.Category == model.CategoryUncategorized {
			item.Category = e.classifier.Classify(item)
		}

		trendResult := e.trends.Score(item)
		si := e.occasions.Score(item, occasionKey, trendResult)

		if e.links != nil && si.SourceURL == "" {
			si.SourceURL = e.links.Resolve(si.Item)
		}

		if err := si.Validate(); err != nil {
			return nil, fmt.Errorf("scored item at index %d: %w", i, err)
		}

		scored = append(scored, si)
	}

	byCategory := scored.ByCategory()
	for _, group := range byCategory {
		group.Sort()
	}

	outfits := e.assembler.Assemble(byCategory, occasionKey)

	profile := e.occasions.Profile(occasionKey)
	for i := range outfits {
		outfits[i] = e.annotator.Annotate(outfits[i], profile)
	}

	slog.Debug("curation complete",
		"occasion", occasionKey,
		"scored_items", len(scored),
		"outfits", len(outfits))

	if outfits == nil {
		outfits = []model.Outfit{}
	}

	return &model.Response{
		Outfits: outfits,
		Prompt:  req.Prompt,
	}, nil
}

// validateCatalog fails fast on malformed items and duplicate IDs.
func validateCatalog(catalog []model.Item) error {
	seen := make(map[string]bool, len(catalog))
	for i, item := range catalog {
		if err := item.Validate(); err != nil {
			return common.InvalidInputf("catalog item at index %d: %v", i, err)
		}
		if seen[item.ID] {
			return common.InvalidInputf("duplicate item ID %q", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}
