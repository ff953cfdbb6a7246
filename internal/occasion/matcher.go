package occasion

import (
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/trend"
)

// Score contributions. An item can match both key and avoid pieces; neither
// short-circuits the other.
const (
	keyPieceBonus     = 20
	avoidPiecePenalty = 15
	paletteBonus      = 10

	// Trend contributes at most 20 points: one-fifth weight relative to
	// occasion fit.
	trendDivisor = 5
)

// avoidTip replaces the profile styling tip when an item matched an
// avoid piece.
const avoidTip = "This piece may clash with the occasion's dress code; consider alternatives."

// Matcher scores items against occasion profiles. Unknown occasions fall
// back to the casual profile rather than failing; occasion mismatch is a
// soft preference, not a correctness requirement.
type Matcher struct {
	profiles map[string]model.OccasionProfile
	fallback string
}

// NewMatcher creates a matcher from the given profiles.
func NewMatcher(profiles []model.OccasionProfile) (*Matcher, error) {
	byKey := make(map[string]model.OccasionProfile, len(profiles))
	for i, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("occasion profile at index %d: %w", i, err)
		}
		byKey[p.Key] = p
	}

	if _, ok := byKey[KeyCasual]; !ok {
		return nil, fmt.Errorf("profiles must include the %q fallback", KeyCasual)
	}

	return &Matcher{profiles: byKey, fallback: KeyCasual}, nil
}

// NewDefaultMatcher creates a matcher with the stock profiles.
func NewDefaultMatcher() *Matcher {
	m, err := NewMatcher(DefaultProfiles())
	if err != nil {
		// The stock profiles are compile-time constants; a validation
		// failure here is a programming error.
		panic(err)
	}
	return m
}

// Profile resolves the profile for key, falling back to casual for unknown
// occasions.
func (m *Matcher) Profile(key string) model.OccasionProfile {
	if p, ok := m.profiles[strings.ToLower(key)]; ok {
		return p
	}
	return m.profiles[m.fallback]
}

// Keys returns the known occasion keys in profile-table order.
func (m *Matcher) Keys() []string {
	keys := make([]string, 0, len(m.profiles))
	for _, p := range DefaultProfiles() {
		if _, ok := m.profiles[p.Key]; ok {
			keys = append(keys, p.Key)
		}
	}
	// Include any non-stock profiles after the stock ordering.
	for key := range m.profiles {
		if !contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Score evaluates how well an item fits the occasion, blending in the trend
// scorer's output at one-fifth weight. The result is clamped to [0, 100].
func (m *Matcher) Score(item model.Item, occasionKey string, trendResult trend.Result) model.ScoredItem {
	profile := m.Profile(occasionKey)
	text := item.SearchText()

	var (
		score        float64
		reasons      []string
		avoidMatched bool
	)

	for _, piece := range profile.KeyPieces {
		if strings.Contains(text, strings.ToLower(piece)) {
			score += keyPieceBonus
			reasons = append(reasons, fmt.Sprintf("key piece for %s: %s", profile.Key, piece))
		}
	}

	for _, piece := range profile.AvoidPieces {
		if strings.Contains(text, strings.ToLower(piece)) {
			score -= avoidPiecePenalty
			avoidMatched = true
			reasons = append(reasons, fmt.Sprintf("less suited to %s: %s", profile.Key, piece))
		}
	}

	for _, color := range profile.ColorPalette {
		if strings.Contains(text, strings.ToLower(color)) {
			score += paletteBonus
			reasons = append(reasons, fmt.Sprintf("%s palette color: %s", profile.Key, color))
		}
	}

	score += trendResult.Score / trendDivisor

	tip := profile.StylingTip
	if avoidMatched {
		tip = avoidTip
	}

	return model.ScoredItem{
		Item:          item,
		TrendScore:    trendResult.Score,
		OccasionScore: clamp(score, 0, 100),
		MatchReasons:  reasons,
		TrendMatches:  trendResult.Matches,
		StylingTip:    tip,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
