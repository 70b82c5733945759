// ABOUTME: Latency and score statistics for benchmark reports
// ABOUTME: Percentiles over sorted samples, no interpolation
package rankbench

import (
	"sort"
	"time"
)

// LatencyStats summarizes per-query ranking latency.
type LatencyStats struct {
	Count int           `json:"count"`
	Mean  time.Duration `json:"mean_ns"`
	P50   time.Duration `json:"p50_ns"`
	P95   time.Duration `json:"p95_ns"`
	P99   time.Duration `json:"p99_ns"`
	Max   time.Duration `json:"max_ns"`
}

// ScoreStats summarizes the 0-100 match scores produced across all queries.
type ScoreStats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

func computeLatency(samples []time.Duration) LatencyStats {
	if len(samples) == 0 {
		return LatencyStats{}
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	return LatencyStats{
		Count: len(sorted),
		Mean:  sum / time.Duration(len(sorted)),
		P50:   percentile(sorted, 50),
		P95:   percentile(sorted, 95),
		P99:   percentile(sorted, 99),
		Max:   sorted[len(sorted)-1],
	}
}

func computeScores(scores []int) ScoreStats {
	if len(scores) == 0 {
		return ScoreStats{}
	}

	stats := ScoreStats{Count: len(scores), Min: scores[0], Max: scores[0]}
	sum := 0
	for _, s := range scores {
		sum += s
		if s < stats.Min {
			stats.Min = s
		}
		if s > stats.Max {
			stats.Max = s
		}
	}
	stats.Mean = float64(sum) / float64(len(scores))
	return stats
}

// percentile picks the nearest-rank percentile from a sorted sample set.
func percentile(sorted []time.Duration, p int) time.Duration {
	idx := (len(sorted)*p + 99) / 100
	if idx > 0 {
		idx--
	}
	return sorted[idx]
}
