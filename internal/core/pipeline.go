// ABOUTME: PipelineConfig bundles the tunables for every pipeline stage
// ABOUTME: Threads externally loaded weights into the stage constructors
package core

import (
	"github.com/moodreads/moodreads/internal/lexicon"
)

// PipelineConfig collects the tunables for the encoding, aggregation,
// interpretation, ranking, and explanation stages so callers can thread
// loaded configuration through in one piece.
type PipelineConfig struct {
	Encoder     EncoderConfig
	Sources     SourceWeights
	Interpreter InterpreterConfig
	Ranker      RankerConfig
	Explainer   ExplainerConfig
}

// DefaultPipelineConfig returns the documented defaults for every stage.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Encoder:     DefaultEncoderConfig(),
		Sources:     DefaultSourceWeights(),
		Interpreter: DefaultInterpreterConfig(),
		Ranker:      DefaultRankerConfig(),
		Explainer:   DefaultExplainerConfig(),
	}
}

// NewRecommenderWithConfig builds a Recommender with the given stage
// tunables over the given lexicon.
func NewRecommenderWithConfig(lex *lexicon.Lexicon, cfg PipelineConfig) *Recommender {
	return NewRecommender(
		NewInterpreter(lex, cfg.Interpreter),
		NewRanker(cfg.Ranker),
		NewExplainer(lex, cfg.Explainer),
	)
}
