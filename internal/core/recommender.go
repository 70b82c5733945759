// ABOUTME: Recommender composes interpret, rank, and explain into one pass
// ABOUTME: Stateless pipeline from QueryIntent plus candidates to explained results
package core

import (
	"fmt"

	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// Recommender runs the full recommendation pipeline over an immutable
// snapshot of candidate profiles. It holds no mutable state between calls,
// so concurrent requests may share one instance.
type Recommender struct {
	interpreter *Interpreter
	ranker      *Ranker
	explainer   *Explainer
}

// NewRecommender wires the pipeline stages together.
func NewRecommender(interpreter *Interpreter, ranker *Ranker, explainer *Explainer) *Recommender {
	return &Recommender{
		interpreter: interpreter,
		ranker:      ranker,
		explainer:   explainer,
	}
}

// NewDefaultRecommender builds a Recommender with all default tunables over
// the given lexicon.
func NewDefaultRecommender(lex *lexicon.Lexicon) *Recommender {
	return NewRecommender(
		NewInterpreter(lex, DefaultInterpreterConfig()),
		NewRanker(DefaultRankerConfig()),
		NewExplainer(lex, DefaultExplainerConfig()),
	)
}

// Recommend interprets the intent, ranks the candidates, and attaches
// matched emotions and an explanation to each result.
func (r *Recommender) Recommend(intent models.QueryIntent, candidates []*models.ItemProfile, limit int) (*Ranking, error) {
	query, err := r.interpreter.Interpret(intent)
	if err != nil {
		return nil, fmt.Errorf("interpreting query intent: %w", err)
	}

	ranking, err := r.ranker.Rank(query, candidates, limit)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.ItemProfile, len(candidates))
	for _, c := range candidates {
		if c != nil {
			byID[c.BookID] = c
		}
	}

	for i := range ranking.Results {
		profile, ok := byID[ranking.Results[i].BookID]
		if !ok {
			continue
		}
		matched, explanation := r.explainer.Explain(query.Vector, profile, ranking.Results[i].Score)
		ranking.Results[i].Matched = matched
		ranking.Results[i].Explanation = explanation
	}

	return ranking, nil
}
