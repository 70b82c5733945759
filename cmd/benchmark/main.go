// ABOUTME: Command-line benchmark runner for the ranking pipeline
// ABOUTME: Ranks synthetic catalogs and outputs JSON results
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/moodreads/moodreads/benchmarks/rankbench"
)

func main() {
	profileCount := flag.Int("profiles", 1000, "Number of synthetic book profiles")
	queryCount := flag.Int("queries", 100, "Number of mood queries to rank")
	limit := flag.Int("limit", 10, "Results per query")
	seed := flag.Int64("seed", 42, "Generation seed")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Print per-query top results")
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("MoodReads Ranking Benchmarks")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Printf("Catalog: %d profiles, %d queries, limit %d, seed %d\n\n",
		*profileCount, *queryCount, *limit, *seed)

	runner := rankbench.NewRunner(rankbench.Config{
		Seed:         *seed,
		ProfileCount: *profileCount,
		QueryCount:   *queryCount,
		Limit:        *limit,
		Verbose:      *verbose,
	})

	report, err := runner.Run()
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}

	fmt.Printf("Total time:    %v\n", report.TotalDuration)
	fmt.Printf("Latency p50:   %v\n", report.Latency.P50)
	fmt.Printf("Latency p95:   %v\n", report.Latency.P95)
	fmt.Printf("Latency p99:   %v\n", report.Latency.P99)
	fmt.Printf("Score mean:    %.1f (min %d, max %d)\n",
		report.Scores.Mean, report.Scores.Min, report.Scores.Max)
	fmt.Printf("Deterministic: %v\n", report.Deterministic)
	if report.SkippedTotal > 0 {
		fmt.Printf("Skipped:       %d candidate(s)\n", report.SkippedTotal)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal results: %v", err)
	}
	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	fmt.Printf("\nResults written to %s\n", *outputPath)

	if !report.Deterministic {
		os.Exit(1)
	}
}
