// ABOUTME: ItemProfile owns a book's composite emotion vector and its inputs
// ABOUTME: Rebuilt whole from the current SourceProfile set, never patched in place
package models

import (
	"strings"
	"time"
)

// ItemProfile is a book's composite emotional profile: the weighted,
// unit-normalized combination of its per-source vectors, together with the
// SourceProfiles and weight configuration that produced it. Whenever new
// source signals arrive the profile is rebuilt from the full set, so the
// composite is always consistent with its inputs.
type ItemProfile struct {
	BookID    string                 `json:"book_id"`
	Composite EmotionVector          `json:"vector"`
	Sources   []SourceProfile        `json:"sources,omitempty"`
	Weights   map[SourceKind]float64 `json:"weights,omitempty"`

	// DominantIntensity is the strongest scaled signal intensity in [0,1]
	// across all sources, retained pre-normalization for the ranking
	// engine's intensity-preference penalty.
	DominantIntensity float64 `json:"dominant_intensity"`

	// Keywords is the deduplicated union of source emotional keywords,
	// used as a separate filter/boost signal during ranking.
	Keywords []string `json:"emotional_keywords,omitempty"`

	// Unscored marks a profile whose composite came out as the zero
	// vector (no usable signal in any source).
	Unscored bool `json:"unscored,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// SignalIntensity returns the strongest raw (1-10 scale) intensity recorded
// for a label across all sources, or 0 if the label never appears.
func (p *ItemProfile) SignalIntensity(label string) float64 {
	key := strings.ToLower(strings.TrimSpace(label))
	var max float64
	for _, src := range p.Sources {
		for _, sig := range src.Signals {
			if strings.ToLower(strings.TrimSpace(sig.Label)) == key && sig.Intensity > max {
				max = sig.Intensity
			}
		}
	}
	return max
}

// HasKeyword reports whether the profile carries the keyword
// (case-insensitive).
func (p *ItemProfile) HasKeyword(keyword string) bool {
	key := strings.ToLower(strings.TrimSpace(keyword))
	for _, k := range p.Keywords {
		if strings.ToLower(strings.TrimSpace(k)) == key {
			return true
		}
	}
	return false
}
