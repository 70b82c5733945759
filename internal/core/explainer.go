// ABOUTME: Explainer derives human-readable justifications for matches
// ABOUTME: Picks co-important emotion dimensions shared by query and candidate
package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// DefaultTopEmotions is how many shared emotions an explanation names.
const DefaultTopEmotions = 3

// ExplainerConfig tunes explanation building.
type ExplainerConfig struct {
	TopEmotions int
}

// DefaultExplainerConfig returns the documented defaults.
func DefaultExplainerConfig() ExplainerConfig {
	return ExplainerConfig{TopEmotions: DefaultTopEmotions}
}

// Explainer renders short justifications from the overlap between a query
// vector and a matched profile. Pure computation: no side effects, no
// external calls.
type Explainer struct {
	lexicon *lexicon.Lexicon
	cfg     ExplainerConfig
}

// NewExplainer creates an Explainer over the given lexicon.
func NewExplainer(lex *lexicon.Lexicon, cfg ExplainerConfig) *Explainer {
	if cfg.TopEmotions <= 0 {
		cfg.TopEmotions = DefaultTopEmotions
	}
	return &Explainer{lexicon: lex, cfg: cfg}
}

// Explain selects up to TopEmotions dimensions where both query and
// candidate carry weight, ranked by the product of the two weights, and
// renders them with the candidate's original analyzer intensities plus a
// one-line summary sentence.
func (ex *Explainer) Explain(queryVector models.EmotionVector, profile *models.ItemProfile, score int) ([]models.MatchedEmotion, string) {
	type shared struct {
		idx    int
		weight float64
	}

	n := len(queryVector)
	if len(profile.Composite) < n {
		n = len(profile.Composite)
	}

	var overlap []shared
	for i := 0; i < n; i++ {
		if queryVector[i] > 0 && profile.Composite[i] > 0 {
			overlap = append(overlap, shared{idx: i, weight: queryVector[i] * profile.Composite[i]})
		}
	}

	sort.Slice(overlap, func(i, j int) bool {
		if overlap[i].weight != overlap[j].weight {
			return overlap[i].weight > overlap[j].weight
		}
		return overlap[i].idx < overlap[j].idx
	})

	if len(overlap) > ex.cfg.TopEmotions {
		overlap = overlap[:ex.cfg.TopEmotions]
	}

	matched := make([]models.MatchedEmotion, 0, len(overlap))
	for _, s := range overlap {
		label := ex.lexicon.Label(s.idx)
		intensity := profile.SignalIntensity(label)
		if intensity == 0 {
			// Arc-only emotions have no analyzer score; approximate
			// one from the composite weight.
			intensity = math.Round(profile.Composite[s.idx] * 10)
		}
		matched = append(matched, models.MatchedEmotion{
			Label:     label,
			Intensity: intensity,
			CoWeight:  s.weight,
		})
	}

	return matched, ex.sentence(matched, score)
}

// sentence renders the one-line justification.
func (ex *Explainer) sentence(matched []models.MatchedEmotion, score int) string {
	if len(matched) == 0 {
		return fmt.Sprintf("A %d%% emotional match for your mood overall.", score)
	}

	labels := make([]string, len(matched))
	for i, m := range matched {
		labels[i] = m.Label
	}

	return fmt.Sprintf("A %d%% match: it evokes the %s you're looking for.", score, joinLabels(labels))
}

// joinLabels formats label lists as "a", "a and b", or "a, b, and c".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
}
