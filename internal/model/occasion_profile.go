package model

import "fmt"

// OccasionProfile describes what works and what doesn't for a named occasion.
// Profiles are static reference data, read-only for the life of the process.
type OccasionProfile struct {
	Key          string
	KeyPieces    []string
	AvoidPieces  []string
	ColorPalette []string
	StylingTip   string
}

// Validate ensures the profile has valid data.
func (p *OccasionProfile) Validate() error {
	if p.Key == "" {
		return fmt.Errorf("occasion key is required")
	}
	if len(p.KeyPieces) == 0 {
		return fmt.Errorf("occasion %q has no key pieces", p.Key)
	}
	if p.StylingTip == "" {
		return fmt.Errorf("occasion %q has no styling tip", p.Key)
	}
	return nil
}
