// ABOUTME: Interpreter maps a structured mood intent onto a query vector
// ABOUTME: Weights desired emotions fully, journey mentions at half, damps current state
package core

import (
	"strings"

	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

const (
	// DefaultJourneyWeight is the weight of emotions parsed out of the
	// free-text journey description, relative to explicitly desired ones.
	DefaultJourneyWeight = 0.5

	// DefaultStateDamping down-weights current-state emotions for users
	// asking for a low or moderate experience: "I feel this now" is not
	// "give me more of it".
	DefaultStateDamping = 0.5
)

// InterpreterConfig tunes query interpretation.
type InterpreterConfig struct {
	JourneyWeight float64
	StateDamping  float64
}

// DefaultInterpreterConfig returns the documented defaults.
func DefaultInterpreterConfig() InterpreterConfig {
	return InterpreterConfig{
		JourneyWeight: DefaultJourneyWeight,
		StateDamping:  DefaultStateDamping,
	}
}

// Interpreter converts QueryIntents into rankable Queries.
type Interpreter struct {
	lexicon *lexicon.Lexicon
	cfg     InterpreterConfig
}

// NewInterpreter creates an Interpreter over the given lexicon. Zero
// weights are honored as configured; only negative values fall back to the
// defaults.
func NewInterpreter(lex *lexicon.Lexicon, cfg InterpreterConfig) *Interpreter {
	if cfg.JourneyWeight < 0 {
		cfg.JourneyWeight = DefaultJourneyWeight
	}
	if cfg.StateDamping < 0 {
		cfg.StateDamping = DefaultStateDamping
	}
	return &Interpreter{lexicon: lex, cfg: cfg}
}

// Interpret builds the query vector and pass-through signals from an
// intent. Desired emotions contribute at full weight, journey-text mentions
// at JourneyWeight, and current-state emotions are damped under a low or
// moderate intensity preference unless the user also desires them.
func (qi *Interpreter) Interpret(intent models.QueryIntent) (models.Query, error) {
	weights := make(map[int]float64)

	desired := make(map[int]bool, len(intent.DesiredExperience))
	for _, label := range intent.DesiredExperience {
		idx, ok := qi.resolve(label)
		if !ok {
			continue
		}
		weights[idx] = 1.0
		desired[idx] = true
	}

	for _, label := range journeyMentions(intent.Journey) {
		if !qi.lexicon.Contains(label) {
			continue
		}
		idx, err := qi.lexicon.IndexOf(label)
		if err != nil {
			continue
		}
		if qi.cfg.JourneyWeight > weights[idx] {
			weights[idx] = qi.cfg.JourneyWeight
		}
	}

	// Current state is a negative-preference hint: when the user wants a
	// calmer experience, damp those dimensions unless explicitly desired
	// too (the positive weight wins).
	if intent.Intensity == models.IntensityLow || intent.Intensity == models.IntensityModerate {
		for _, label := range intent.CurrentState {
			idx, ok := qi.resolve(label)
			if !ok || desired[idx] {
				continue
			}
			weights[idx] *= qi.cfg.StateDamping
		}
	}

	vector := models.NewEmotionVector(qi.lexicon.Size())
	for idx, w := range weights {
		vector[idx] = w
	}
	if !vector.IsZero() {
		vector = vector.Normalize()
	}

	keywords := make([]string, len(intent.Keywords))
	copy(keywords, intent.Keywords)

	return models.Query{
		Vector:    vector,
		Keywords:  keywords,
		Intensity: intent.Intensity,
	}, nil
}

// resolve looks up a structured intent label. Labels the lexicon does not
// recognize in closed mode are dropped rather than failing the whole query;
// upstream analysis occasionally invents labels outside the standard set.
func (qi *Interpreter) resolve(label string) (int, bool) {
	if !qi.lexicon.Open() && !qi.lexicon.Contains(label) {
		return 0, false
	}
	idx, err := qi.lexicon.IndexOf(label)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// journeyMentions tokenizes a free-text journey description into candidate
// emotion words.
func journeyMentions(journey string) []string {
	if strings.TrimSpace(journey) == "" {
		return nil
	}
	return strings.FieldsFunc(strings.ToLower(journey), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
}
