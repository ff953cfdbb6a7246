package outfit

import (
	"fmt"

	"github.com/glamstack/attire/internal/model"
	"github.com/glamstack/attire/internal/occasion"
)

// Trend level labels, keyed off the outfit's mean trend score.
const (
	LevelHighlyTrendy     = "Highly Trendy"
	LevelOnTrend          = "On-Trend"
	LevelModeratelyTrendy = "Moderately Trendy"
	LevelClassic          = "Classic"
)

// focalThreshold is the single-item trend score above which a piece is
// called out as the focal point of the look.
const focalThreshold = 70

var levelHighlights = map[string]string{
	LevelHighlyTrendy:     "This look sits right at the front of the current trend cycle.",
	LevelOnTrend:          "This look leans into several of the season's strongest trends.",
	LevelModeratelyTrendy: "This look balances current trends with dependable staples.",
	LevelClassic:          "This look favors timeless pieces over passing trends.",
}

// Annotator enriches assembled outfits with trend labels, highlights, and
// per-item styling advice.
type Annotator struct{}

// NewAnnotator creates an annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// TrendLevel maps a mean trend score to its qualitative label.
func TrendLevel(score float64) string {
	switch {
	case score > 80:
		return LevelHighlyTrendy
	case score > 65:
		return LevelOnTrend
	case score > 50:
		return LevelModeratelyTrendy
	default:
		return LevelClassic
	}
}

// Annotate returns a copy of the outfit augmented with commentary derived
// from its score distribution and the occasion profile.
func (an *Annotator) Annotate(o model.Outfit, profile model.OccasionProfile) model.Outfit {
	o.TrendLevel = TrendLevel(o.TrendScore)
	o.Highlights = []string{levelHighlights[o.TrendLevel]}

	if standout := standoutItem(o.Items); standout != nil {
		highlight := fmt.Sprintf("The %s is the standout piece here", standout.Name)
		if len(standout.TrendMatches) > 0 {
			highlight += fmt.Sprintf(" (%s)", standout.TrendMatches[0])
		}
		o.Highlights = append(o.Highlights, highlight+".")
	}

	o.ItemCommentary = make([]string, len(o.Items))
	for i, item := range o.Items {
		if item.TrendScore > focalThreshold {
			o.ItemCommentary[i] = fmt.Sprintf("Let the %s be the focal point of the look.", item.Name)
		} else {
			o.ItemCommentary[i] = fmt.Sprintf("Pair the %s with trendier pieces to elevate the look.", item.Name)
		}
	}

	o.StylingTips = []string{profile.StylingTip}
	if profile.Key == occasion.KeyFormal {
		o.StylingTips = append(o.StylingTips, "Keep accessories minimal and polished.")
	} else {
		o.StylingTips = append(o.StylingTips, "Finish with statement accessories to pull the look together.")
	}
	o.StylingTips = append(o.StylingTips, fmt.Sprintf("This combination suits %s settings well.", profile.Key))

	return o
}

// standoutItem returns the highest-trend item above the focal threshold, or
// nil when no single piece stands out.
func standoutItem(items []model.ScoredItem) *model.ScoredItem {
	var best *model.ScoredItem
	for i := range items {
		if items[i].TrendScore <= focalThreshold {
			continue
		}
		if best == nil || items[i].TrendScore > best.TrendScore {
			best = &items[i]
		}
	}
	return best
}
