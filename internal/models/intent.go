// ABOUTME: QueryIntent is the structured form of a user's mood request
// ABOUTME: Parsed upstream by an external analysis call, transient per request
package models

import "strings"

// IntensityPreference is how strong an emotional experience the user wants.
type IntensityPreference string

const (
	IntensityLow      IntensityPreference = "low"
	IntensityModerate IntensityPreference = "moderate"
	IntensityHigh     IntensityPreference = "high"
	IntensityNone     IntensityPreference = ""
)

// ParseIntensity normalizes an analyzer-supplied preference string. The
// upstream prompt answers with "high/medium/low"; "medium" maps to moderate
// and anything unrecognized to no preference.
func ParseIntensity(s string) IntensityPreference {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return IntensityLow
	case "medium", "moderate":
		return IntensityModerate
	case "high":
		return IntensityHigh
	}
	return IntensityNone
}

// QueryIntent is a user's emotional ask, already parsed from free text by
// the external analysis call. Built per request and never persisted.
type QueryIntent struct {
	CurrentState      []string            `json:"current_emotional_state,omitempty"`
	DesiredExperience []string            `json:"desired_emotional_experience,omitempty"`
	Journey           string              `json:"emotional_journey,omitempty"`
	Intensity         IntensityPreference `json:"intensity_preference,omitempty"`
	Keywords          []string            `json:"emotional_keywords,omitempty"`
	Summary           string              `json:"summary,omitempty"`
}

// Query is the interpreted, rankable form of a QueryIntent: a unit query
// vector plus the pass-through keyword and intensity signals.
type Query struct {
	Vector    EmotionVector
	Keywords  []string
	Intensity IntensityPreference
}
