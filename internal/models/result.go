// ABOUTME: RankedResult carries one recommendation with score and explanation
// ABOUTME: Produced per ranking request, ephemeral
package models

// MatchedEmotion is one dimension where query and candidate overlap,
// reported with the candidate's original analyzer intensity (1-10 scale)
// and the co-importance (product of the two unit-vector weights) that
// ranked it.
type MatchedEmotion struct {
	Label     string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
	CoWeight  float64 `json:"co_weight"`
}

// RankedResult is one entry of an ordered recommendation list. Score is a
// user-facing percentage in [0,100]; Cosine is the underlying raw
// similarity retained for tie-breaking and diagnostics.
type RankedResult struct {
	BookID      string           `json:"book_id"`
	Score       int              `json:"match_score"`
	Cosine      float64          `json:"cosine"`
	Matched     []MatchedEmotion `json:"matching_emotions,omitempty"`
	Explanation string           `json:"explanation,omitempty"`
}

// SkipNotice records a candidate omitted from a ranking pass, typically for
// a malformed vector. The pass itself continues with the remaining valid
// candidates.
type SkipNotice struct {
	BookID string `json:"book_id"`
	Reason string `json:"reason"`
}
