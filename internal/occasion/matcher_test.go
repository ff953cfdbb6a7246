package occasion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/trend"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher([]model.OccasionProfile{
		{
			Key:          KeyCasual,
			KeyPieces:    []string{"jeans", "sneaker"},
			AvoidPieces:  []string{"gown"},
			ColorPalette: []string{"navy"},
			StylingTip:   "Keep it relaxed.",
		},
		{
			Key:          KeyBusiness,
			KeyPieces:    []string{"blazer"},
			AvoidPieces:  []string{"graphic tee"},
			ColorPalette: []string{"charcoal"},
			StylingTip:   "Keep it tailored.",
		},
	})
	require.NoError(t, err)
	return m
}

func TestMatcher_Score(t *testing.T) {
	m := testMatcher(t)

	tests := []struct {
		name      string
		item      model.Item
		occasion  string
		trend     trend.Result
		wantScore float64
		wantTip   string
	}{
		{
			name:      "no matches scores only trend share",
			item:      model.Item{Name: "Plain Shirt"},
			occasion:  KeyCasual,
			trend:     trend.Result{Score: 50},
			wantScore: 10,
			wantTip:   "Keep it relaxed.",
		},
		{
			name:      "key piece adds twenty",
			item:      model.Item{Name: "Slim Jeans"},
			occasion:  KeyCasual,
			wantScore: 20,
			wantTip:   "Keep it relaxed.",
		},
		{
			name:      "avoid piece subtracts and swaps tip",
			item:      model.Item{Name: "Graphic Tee", Description: "graphic tee with print"},
			occasion:  KeyBusiness,
			trend:     trend.Result{Score: 100},
			wantScore: 5, // -15 + 100/5
			wantTip:   avoidTip,
		},
		{
			name:      "negative totals clamp to zero",
			item:      model.Item{Name: "Graphic Tee", Description: "graphic tee"},
			occasion:  KeyBusiness,
			wantScore: 0,
			wantTip:   avoidTip,
		},
		{
			name:      "palette color adds ten",
			item:      model.Item{Name: "Navy Jacket"},
			occasion:  KeyCasual,
			wantScore: 10,
			wantTip:   "Keep it relaxed.",
		},
		{
			name:      "key avoid and palette combine",
			item:      model.Item{Name: "Navy Jeans", Description: "pairs with a gown"},
			occasion:  KeyCasual,
			wantScore: 20 - 15 + 10,
			wantTip:   avoidTip,
		},
		{
			name:      "unknown occasion falls back to casual",
			item:      model.Item{Name: "Slim Jeans"},
			occasion:  "gala",
			wantScore: 20,
			wantTip:   "Keep it relaxed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := m.Score(tt.item, tt.occasion, tt.trend)
			assert.InDelta(t, tt.wantScore, scored.OccasionScore, 0.0001)
			assert.Equal(t, tt.wantTip, scored.StylingTip)
			assert.Equal(t, tt.trend.Score, scored.TrendScore)
		})
	}
}

func TestMatcher_AvoidedUnderBusinessScoresLowerThanCasual(t *testing.T) {
	m := testMatcher(t)
	item := model.Item{Name: "Graphic Tee", Description: "bold graphic tee"}

	business := m.Score(item, KeyBusiness, trend.Result{})
	casual := m.Score(item, KeyCasual, trend.Result{})

	assert.Less(t, business.OccasionScore, casual.OccasionScore)
}

func TestMatcher_RecordsReasons(t *testing.T) {
	m := testMatcher(t)

	scored := m.Score(model.Item{Name: "Navy Jeans"}, KeyCasual, trend.Result{
		Score:   40,
		Matches: []string{"on-trend fabric: denim"},
	})

	assert.Equal(t, []string{
		"key piece for casual: jeans",
		"casual palette color: navy",
	}, scored.MatchReasons)
	assert.Equal(t, []string{"on-trend fabric: denim"}, scored.TrendMatches)
}

func TestNewMatcher_RequiresCasualFallback(t *testing.T) {
	_, err := NewMatcher([]model.OccasionProfile{
		{
			Key:        KeyFormal,
			KeyPieces:  []string{"gown"},
			StylingTip: "tip",
		},
	})
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		keywords []string
		want     string
	}{
		{name: "festival keyword", prompt: "what should I wear to coachella", want: KeyFestival},
		{name: "office maps to formal", prompt: "office party next week", want: KeyFormal},
		{name: "business maps to formal", prompt: "business dinner", want: KeyFormal},
		{name: "beach maps to vacation", prompt: "packing for the beach", want: KeyVacation},
		{name: "keywords are considered", prompt: "help me dress", keywords: []string{"resort", "chic"}, want: KeyVacation},
		{name: "default is casual", prompt: "something cute", want: KeyCasual},
		{name: "empty prompt is casual", prompt: "", want: KeyCasual},
		{name: "case insensitive", prompt: "FORMAL event", want: KeyFormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.prompt, tt.keywords))
		})
	}
}

func TestDefaultProfiles_Valid(t *testing.T) {
	for _, p := range DefaultProfiles() {
		assert.NoError(t, p.Validate(), "profile %s", p.Key)
	}
}
