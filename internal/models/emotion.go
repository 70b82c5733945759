// ABOUTME: Raw emotional signal structures produced by external text analysis
// ABOUTME: Defines EmotionSignal, Arc, and per-source SourceProfile
package models

import "time"

// SourceKind tags which text source a profile was extracted from.
type SourceKind string

const (
	SourceDescription SourceKind = "description"
	SourceReviews     SourceKind = "reviews"
	SourceGenre       SourceKind = "genre"
)

// Valid reports whether the kind is one of the recognized source tags.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceDescription, SourceReviews, SourceGenre:
		return true
	}
	return false
}

// EmotionSignal is one (label, intensity) observation from upstream
// analysis. Intensity is on the analyzer's 1-10 scale; out-of-range values
// are clamped by the encoder, not rejected.
type EmotionSignal struct {
	Label     string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
}

// Arc is the emotional progression across a narrative, three ordered label
// lists for beginning, middle, and end. It carries no intensities; the
// encoder treats arc mentions as a lower-weight secondary signal.
type Arc struct {
	Beginning []string `json:"beginning,omitempty"`
	Middle    []string `json:"middle,omitempty"`
	End       []string `json:"end,omitempty"`
}

// Empty reports whether no stage mentions any emotion.
func (a Arc) Empty() bool {
	return len(a.Beginning) == 0 && len(a.Middle) == 0 && len(a.End) == 0
}

// Stages returns the three stage lists in narrative order.
func (a Arc) Stages() [][]string {
	return [][]string{a.Beginning, a.Middle, a.End}
}

// SourceProfile is the emotional analysis of one text source for one book.
// Immutable once created: re-analysis produces a new SourceProfile rather
// than editing an existing one.
type SourceProfile struct {
	ProfileID  string          `json:"profile_id"`
	BookID     string          `json:"book_id"`
	Kind       SourceKind      `json:"kind"`
	Signals    []EmotionSignal `json:"primary_emotions"`
	Arc        Arc             `json:"emotional_arc,omitempty"`
	Keywords   []string        `json:"emotional_keywords,omitempty"`
	Summary    string          `json:"overall_profile,omitempty"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
}

// MaxIntensity returns the largest signal intensity, on the raw 1-10 scale.
func (p SourceProfile) MaxIntensity() float64 {
	var max float64
	for _, s := range p.Signals {
		if s.Intensity > max {
			max = s.Intensity
		}
	}
	return max
}
