package occasion

import "strings"

// detectionRules maps prompt keywords to occasion keys, checked in order.
var detectionRules = []struct {
	key      string
	keywords []string
}{
	{KeyFestival, []string{"festival", "coachella"}},
	{KeyFormal, []string{"formal", "business", "office"}},
	{KeyVacation, []string{"vacation", "beach", "resort"}},
}

// Detect derives an occasion key from a free-text prompt and style keywords
// when the caller did not supply one explicitly. Unmatched prompts default
// to casual.
func Detect(prompt string, styleKeywords []string) string {
	text := strings.ToLower(prompt + " " + strings.Join(styleKeywords, " "))

	for _, rule := range detectionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.key
			}
		}
	}

	return KeyCasual
}
