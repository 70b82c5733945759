// ABOUTME: Ranker scores candidate profiles against a query vector
// ABOUTME: Cosine similarity with keyword boost, intensity penalty, deterministic ordering
package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/moodreads/moodreads/internal/models"
)

const (
	// DefaultKeywordBoostWeight caps the score lift from keyword overlap.
	DefaultKeywordBoostWeight = 0.15

	// DefaultMaxIntensityPenalty bounds the deduction for mismatching the
	// requested intensity preference.
	DefaultMaxIntensityPenalty = 0.1
)

// InvalidLimitError reports a non-positive result limit. This is a
// caller-input error, surfaced immediately.
type InvalidLimitError struct {
	Limit int
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("result limit must be positive, got %d", e.Limit)
}

// MalformedVectorError reports a vector with non-finite components reaching
// the ranking engine.
type MalformedVectorError struct {
	BookID string
}

func (e *MalformedVectorError) Error() string {
	if e.BookID == "" {
		return "query vector contains non-finite components"
	}
	return fmt.Sprintf("candidate vector for book %s contains non-finite components", e.BookID)
}

// RankerConfig tunes the scoring formula.
type RankerConfig struct {
	KeywordBoostWeight  float64
	MaxIntensityPenalty float64
}

// DefaultRankerConfig returns the documented defaults.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{
		KeywordBoostWeight:  DefaultKeywordBoostWeight,
		MaxIntensityPenalty: DefaultMaxIntensityPenalty,
	}
}

// Ranking is the outcome of one scoring pass: the ordered results plus a
// notice per candidate that had to be skipped.
type Ranking struct {
	Results []models.RankedResult
	Skipped []models.SkipNotice
}

// Ranker ranks candidate ItemProfiles against a query.
type Ranker struct {
	cfg RankerConfig
}

// NewRanker creates a Ranker. A zero weight is honored as configured, so
// the keyword boost or intensity penalty can be switched off; only negative
// values fall back to the defaults.
func NewRanker(cfg RankerConfig) *Ranker {
	if cfg.KeywordBoostWeight < 0 {
		cfg.KeywordBoostWeight = DefaultKeywordBoostWeight
	}
	if cfg.MaxIntensityPenalty < 0 {
		cfg.MaxIntensityPenalty = DefaultMaxIntensityPenalty
	}
	return &Ranker{cfg: cfg}
}

// Rank scores every candidate and returns the top results, capped at limit.
// A malformed candidate is skipped with a notice rather than aborting the
// pass; an empty candidate set yields an empty (not nil error) result.
// Ordering is deterministic: score descending, then raw cosine descending,
// then book ID ascending.
func (r *Ranker) Rank(query models.Query, candidates []*models.ItemProfile, limit int) (*Ranking, error) {
	if limit <= 0 {
		return nil, &InvalidLimitError{Limit: limit}
	}
	if !query.Vector.IsFinite() {
		return nil, &MalformedVectorError{}
	}

	ranking := &Ranking{Results: []models.RankedResult{}}

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		if !candidate.Composite.IsFinite() {
			ranking.Skipped = append(ranking.Skipped, models.SkipNotice{
				BookID: candidate.BookID,
				Reason: (&MalformedVectorError{BookID: candidate.BookID}).Error(),
			})
			continue
		}
		if candidate.Unscored || candidate.Composite.IsZero() {
			ranking.Skipped = append(ranking.Skipped, models.SkipNotice{
				BookID: candidate.BookID,
				Reason: "profile has no emotional signal",
			})
			continue
		}

		cosine := query.Vector.Dot(candidate.Composite)
		boost := r.keywordBoost(query.Keywords, candidate)
		penalty := r.intensityPenalty(query.Intensity, candidate.DominantIntensity)

		raw := clamp(cosine+boost-penalty, -1, 1)
		score := int(math.Round((raw + 1) / 2 * 100))

		ranking.Results = append(ranking.Results, models.RankedResult{
			BookID: candidate.BookID,
			Score:  score,
			Cosine: cosine,
		})
	}

	sort.Slice(ranking.Results, func(i, j int) bool {
		a, b := ranking.Results[i], ranking.Results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Cosine != b.Cosine {
			return a.Cosine > b.Cosine
		}
		return a.BookID < b.BookID
	})

	if len(ranking.Results) > limit {
		ranking.Results = ranking.Results[:limit]
	}

	return ranking, nil
}

// keywordBoost rewards overlap between query keywords and the candidate's
// emotional keywords, proportional to how much of the query matched.
func (r *Ranker) keywordBoost(keywords []string, candidate *models.ItemProfile) float64 {
	if len(keywords) == 0 {
		return 0
	}
	matched := 0
	for _, kw := range keywords {
		if candidate.HasKeyword(kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)) * r.cfg.KeywordBoostWeight
}

// intensityPenalty deducts a bounded amount when the candidate's dominant
// intensity band misses the requested preference. Band distance scales the
// penalty: adjacent bands cost half the maximum, opposite bands the full
// amount.
func (r *Ranker) intensityPenalty(pref models.IntensityPreference, dominant float64) float64 {
	want := intensityBand(pref)
	if want < 0 {
		return 0
	}
	got := dominantBand(dominant)
	distance := want - got
	if distance < 0 {
		distance = -distance
	}
	return float64(distance) / 2 * r.cfg.MaxIntensityPenalty
}

// intensityBand maps a preference to a band level, or -1 for no preference.
func intensityBand(pref models.IntensityPreference) int {
	switch pref {
	case models.IntensityLow:
		return 0
	case models.IntensityModerate:
		return 1
	case models.IntensityHigh:
		return 2
	}
	return -1
}

// dominantBand classifies a candidate's dominant scaled intensity [0,1].
func dominantBand(d float64) int {
	switch {
	case d < 0.4:
		return 0
	case d <= 0.7:
		return 1
	default:
		return 2
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
