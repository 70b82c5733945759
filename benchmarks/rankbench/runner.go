// ABOUTME: Benchmark runner for the recommendation ranking pipeline
// ABOUTME: Measures query latency and verifies ordering determinism
package rankbench

import (
	"fmt"
	"reflect"
	"time"

	"github.com/moodreads/moodreads/internal/core"
	"github.com/moodreads/moodreads/internal/lexicon"
	"github.com/moodreads/moodreads/internal/models"
)

// Config controls a benchmark run.
type Config struct {
	Seed         int64 `json:"seed"`
	ProfileCount int   `json:"profile_count"`
	QueryCount   int   `json:"query_count"`
	Limit        int   `json:"limit"`
	Verbose      bool  `json:"-"`
}

// DefaultConfig returns a run sized to finish in seconds.
func DefaultConfig() Config {
	return Config{
		Seed:         42,
		ProfileCount: 1000,
		QueryCount:   100,
		Limit:        10,
	}
}

// Report is the JSON-serializable outcome of a run.
type Report struct {
	Config        Config        `json:"config"`
	Latency       LatencyStats  `json:"latency"`
	Scores        ScoreStats    `json:"scores"`
	Deterministic bool          `json:"deterministic"`
	SkippedTotal  int           `json:"skipped_total"`
	TotalDuration time.Duration `json:"total_duration_ns"`
}

// Runner executes ranking benchmarks over a synthetic catalog.
type Runner struct {
	cfg         Config
	recommender *core.Recommender
}

// NewRunner creates a Runner.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:         cfg,
		recommender: core.NewDefaultRecommender(lexicon.Default()),
	}
}

// Run generates the synthetic catalog and queries, ranks every query, and
// re-runs the first query to confirm ordering is reproducible.
func (r *Runner) Run() (*Report, error) {
	catalog, err := GenerateCatalog(r.cfg.Seed, r.cfg.ProfileCount)
	if err != nil {
		return nil, fmt.Errorf("generating catalog: %w", err)
	}
	queries := GenerateQueries(r.cfg.Seed+1, r.cfg.QueryCount)

	latencies := make([]time.Duration, 0, len(queries))
	var scores []int
	skipped := 0

	start := time.Now()
	for i, intent := range queries {
		queryStart := time.Now()
		ranking, err := r.recommender.Recommend(intent, catalog, r.cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		latencies = append(latencies, time.Since(queryStart))

		skipped += len(ranking.Skipped)
		for _, result := range ranking.Results {
			scores = append(scores, result.Score)
		}
		if r.cfg.Verbose && len(ranking.Results) > 0 {
			fmt.Printf("query %3d: top %s (score %d)\n",
				i, ranking.Results[0].BookID, ranking.Results[0].Score)
		}
	}
	total := time.Since(start)

	deterministic, err := r.checkDeterminism(queries, catalog)
	if err != nil {
		return nil, err
	}

	return &Report{
		Config:        r.cfg,
		Latency:       computeLatency(latencies),
		Scores:        computeScores(scores),
		Deterministic: deterministic,
		SkippedTotal:  skipped,
		TotalDuration: total,
	}, nil
}

// checkDeterminism ranks the first query three times and compares orderings.
func (r *Runner) checkDeterminism(queries []models.QueryIntent, catalog []*models.ItemProfile) (bool, error) {
	if len(queries) == 0 {
		return true, nil
	}

	var baseline []string
	for run := 0; run < 3; run++ {
		ranking, err := r.recommender.Recommend(queries[0], catalog, r.cfg.Limit)
		if err != nil {
			return false, fmt.Errorf("determinism check: %w", err)
		}
		order := make([]string, 0, len(ranking.Results))
		for _, result := range ranking.Results {
			order = append(order, result.BookID)
		}
		if baseline == nil {
			baseline = order
			continue
		}
		if !reflect.DeepEqual(baseline, order) {
			return false, nil
		}
	}
	return true, nil
}
