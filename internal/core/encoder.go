// ABOUTME: Encoder turns raw emotional signals into unit vectors in lexicon space
// ABOUTME: Scales intensities to [0,1], folds in arc mentions, and normalizes
package core

import (
	"fmt"

	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// DefaultArcWeight is the fraction of the profile's strongest scaled
// intensity credited to emotions that appear only in the narrative arc.
const DefaultArcWeight = 0.3

// EmptySignalError reports a profile with no usable signal, returned only
// when the encoder runs in strict mode. By default an all-zero vector is a
// valid low-information result, not an error.
type EmptySignalError struct {
	BookID string
	Kind   models.SourceKind
}

func (e *EmptySignalError) Error() string {
	return fmt.Sprintf("source profile has no usable emotional signal (book %s, source %s)", e.BookID, e.Kind)
}

// EncoderConfig tunes encoding behavior.
type EncoderConfig struct {
	// ArcWeight scales arc-only emotion mentions relative to the
	// profile's strongest explicit intensity.
	ArcWeight float64

	// Strict makes Encode reject degenerate profiles with
	// EmptySignalError instead of returning the zero vector.
	Strict bool
}

// DefaultEncoderConfig returns the documented defaults.
func DefaultEncoderConfig() EncoderConfig {
	return EncoderConfig{ArcWeight: DefaultArcWeight}
}

// Encoder converts SourceProfiles into EmotionVectors against a lexicon.
type Encoder struct {
	lexicon *lexicon.Lexicon
	cfg     EncoderConfig
}

// NewEncoder creates an Encoder over the given lexicon. A zero ArcWeight
// drops arc-only mentions entirely; only a negative value falls back to the
// default.
func NewEncoder(lex *lexicon.Lexicon, cfg EncoderConfig) *Encoder {
	if cfg.ArcWeight < 0 {
		cfg.ArcWeight = DefaultArcWeight
	}
	return &Encoder{lexicon: lex, cfg: cfg}
}

// Lexicon returns the lexicon the encoder resolves labels against.
func (e *Encoder) Lexicon() *lexicon.Lexicon {
	return e.lexicon
}

// Encode produces a unit vector (or the zero vector for signal-free
// profiles) from one source profile. Duplicate labels keep their maximum
// intensity rather than summing, so an emotion phrased twice is not
// artificially inflated. Out-of-range intensities are clamped to [0,10].
func (e *Encoder) Encode(profile models.SourceProfile) (models.EmotionVector, error) {
	weights := make(map[int]float64, len(profile.Signals))

	var maxScaled float64
	for _, sig := range profile.Signals {
		idx, err := e.lexicon.IndexOf(sig.Label)
		if err != nil {
			return nil, fmt.Errorf("encoding %s signal: %w", profile.Kind, err)
		}
		scaled := clampIntensity(sig.Intensity) / 10.0
		if scaled > weights[idx] {
			weights[idx] = scaled
		}
		if scaled > maxScaled {
			maxScaled = scaled
		}
	}

	// Arc stages carry progression-only emotions with no intensity score.
	// Credit them at a fraction of the strongest explicit signal; an
	// arc-only profile anchors against full intensity.
	if !profile.Arc.Empty() {
		base := maxScaled
		if base == 0 {
			base = 1.0
		}
		arcValue := e.cfg.ArcWeight * base
		for _, stage := range profile.Arc.Stages() {
			for _, label := range stage {
				if !e.lexicon.Open() && !e.lexicon.Contains(label) {
					// Arc text is noisier than scored signals; in closed
					// mode unknown arc labels are dropped, not fatal.
					continue
				}
				idx, err := e.lexicon.IndexOf(label)
				if err != nil {
					continue
				}
				if weights[idx] == 0 {
					weights[idx] = arcValue
				}
			}
		}
	}

	vector := models.NewEmotionVector(e.lexicon.Size())
	for idx, w := range weights {
		vector[idx] = w
	}

	if vector.IsZero() {
		if e.cfg.Strict {
			return nil, &EmptySignalError{BookID: profile.BookID, Kind: profile.Kind}
		}
		return vector, nil
	}

	return vector.Normalize(), nil
}

// clampIntensity forces an analyzer-supplied intensity into [0,10].
// Malformed values outside the range are clamped, not rejected.
func clampIntensity(intensity float64) float64 {
	if intensity < 0 {
		return 0
	}
	if intensity > 10 {
		return 10
	}
	return intensity
}
