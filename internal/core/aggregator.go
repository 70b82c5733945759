// ABOUTME: Aggregator combines per-source emotion vectors into one composite
// ABOUTME: Applies configurable source-kind weights and renormalizes
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// SourceWeights maps a source kind to its contribution weight. Weights need
// not sum to 1: the composite is unit-normalized, which is scale-invariant,
// so absent kinds implicitly renormalize the present ones.
type SourceWeights map[models.SourceKind]float64

// DefaultSourceWeights weights reader reviews heaviest: reviews describe
// felt emotion directly, descriptions advertise it, genre only implies it.
func DefaultSourceWeights() SourceWeights {
	return SourceWeights{
		models.SourceReviews:     0.5,
		models.SourceDescription: 0.3,
		models.SourceGenre:       0.2,
	}
}

// EncodedSource pairs a source profile with its encoded vector.
type EncodedSource struct {
	Profile models.SourceProfile
	Vector  models.EmotionVector
}

// Aggregator builds composite ItemProfiles from encoded sources.
type Aggregator struct {
	lexicon *lexicon.Lexicon
	weights SourceWeights
}

// NewAggregator creates an Aggregator with the given weight table. A nil
// table uses the defaults.
func NewAggregator(lex *lexicon.Lexicon, weights SourceWeights) *Aggregator {
	if weights == nil {
		weights = DefaultSourceWeights()
	}
	return &Aggregator{lexicon: lex, weights: weights}
}

// Aggregate combines the encoded sources into one ItemProfile. The result
// depends only on the inputs and the weight table, so rebuilding with the
// same sources reproduces the same composite vector.
func (a *Aggregator) Aggregate(bookID string, sources []EncodedSource) (*models.ItemProfile, error) {
	dim := a.lexicon.Size()
	composite := models.NewEmotionVector(dim)

	var dominant float64
	var keywords []string
	seen := make(map[string]bool)
	profiles := make([]models.SourceProfile, 0, len(sources))

	for _, src := range sources {
		if len(src.Vector) > dim {
			return nil, fmt.Errorf("aggregating %s source for book %s: vector dimension %d exceeds lexicon size %d",
				src.Profile.Kind, bookID, len(src.Vector), dim)
		}

		weight := a.weights[src.Profile.Kind]
		for i, x := range src.Vector {
			composite[i] += weight * x
		}

		if scaled := clampIntensity(src.Profile.MaxIntensity()) / 10.0; scaled > dominant {
			dominant = scaled
		}

		for _, kw := range src.Profile.Keywords {
			key := strings.ToLower(strings.TrimSpace(kw))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			keywords = append(keywords, kw)
		}

		profiles = append(profiles, src.Profile)
	}

	unscored := composite.IsZero()
	if !unscored {
		composite = composite.Normalize()
	}

	weights := make(SourceWeights, len(a.weights))
	for k, w := range a.weights {
		weights[k] = w
	}

	return &models.ItemProfile{
		BookID:            bookID,
		Composite:         composite,
		Sources:           profiles,
		Weights:           weights,
		DominantIntensity: dominant,
		Keywords:          keywords,
		Unscored:          unscored,
		UpdatedAt:         time.Now(),
	}, nil
}

// Rebuild encodes the full current SourceProfile set and aggregates it.
// ItemProfiles are never patched in place: any signal change flows through
// a complete rebuild so the composite stays consistent with its inputs.
func (a *Aggregator) Rebuild(encoder *Encoder, bookID string, profiles []models.SourceProfile) (*models.ItemProfile, error) {
	sources := make([]EncodedSource, 0, len(profiles))
	for _, p := range profiles {
		vector, err := encoder.Encode(p)
		if err != nil {
			return nil, fmt.Errorf("rebuilding profile for book %s: %w", bookID, err)
		}
		sources = append(sources, EncodedSource{Profile: p, Vector: vector})
	}
	return a.Aggregate(bookID, sources)
}
