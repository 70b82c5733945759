// ABOUTME: Book represents a catalog entry with bibliographic metadata
// ABOUTME: Stored in SQLite for efficient lookup
package models

import "time"

// Book is a catalog item that emotional profiles attach to.
type Book struct {
	BookID       string    `json:"book_id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Genre        string    `json:"genre,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	CoverURL     string    `json:"cover_url,omitempty"`
	GoodreadsURL string    `json:"goodreads_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Recommendation joins a ranked result with its catalog entry for display.
type Recommendation struct {
	Book        Book             `json:"book"`
	Score       int              `json:"match_score"`
	Matched     []MatchedEmotion `json:"matching_emotions,omitempty"`
	Explanation string           `json:"explanation,omitempty"`

	// Optional detail fields, populated when detailed profiles are enabled.
	EmotionalArc   *Arc   `json:"emotional_arc,omitempty"`
	OverallProfile string `json:"overall_profile,omitempty"`
}
