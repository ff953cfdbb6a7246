package cli

import (
	"fmt"
	"strings"

	"github.com/glamstack/attire/internal/model"
)

// RenderOutfit formats one outfit for terminal display.
func RenderOutfit(o model.Outfit) string {
	var b strings.Builder

	b.WriteString(SubtitleStyle.Render(o.Description) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s $%.2f  %s trend %.0f/100\n\n",
		SparkleIcon, BoldStyle.Render(o.TrendLevel),
		TagIcon, o.TotalPrice,
		InfoStyle.Render("·"), o.TrendScore))

	for i, item := range o.Items {
		b.WriteString(fmt.Sprintf("%s %s\n",
			BoldStyle.Render(fmt.Sprintf("%-12s", string(item.Category))),
			item.Name))
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("             %s · $%.2f · occasion %.0f · trend %.0f",
			brandOrUnknown(item.Brand), item.Price, item.OccasionScore, item.TrendScore)) + "\n")
		if i < len(o.ItemCommentary) {
			b.WriteString(SubtleStyle.Render("             "+o.ItemCommentary[i]) + "\n")
		}
	}

	if len(o.Highlights) > 0 {
		b.WriteString("\n")
		for _, h := range o.Highlights {
			b.WriteString(InfoStyle.Render("• "+h) + "\n")
		}
	}

	if len(o.StylingTips) > 0 {
		b.WriteString("\n" + BoldStyle.Render("Styling tips") + "\n")
		for _, tip := range o.StylingTips {
			b.WriteString(SubtleStyle.Render("- "+tip) + "\n")
		}
	}

	return RenderBox(o.Name, strings.TrimRight(b.String(), "\n"))
}

func brandOrUnknown(brand string) string {
	if brand == "" {
		return "unbranded"
	}
	return brand
}
