// ABOUTME: Tests for the ranking benchmark harness
// ABOUTME: Verifies generation determinism and report computation
package rankbench

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateCatalog_Deterministic(t *testing.T) {
	first, err := GenerateCatalog(7, 20)
	if err != nil {
		t.Fatalf("GenerateCatalog() error = %v", err)
	}
	second, err := GenerateCatalog(7, 20)
	if err != nil {
		t.Fatalf("GenerateCatalog() error = %v", err)
	}

	if len(first) != 20 {
		t.Fatalf("len = %d, want 20", len(first))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i].Composite, second[i].Composite) {
			t.Errorf("profile %d differs between runs with same seed", i)
		}
	}
}

func TestGenerateQueries_Deterministic(t *testing.T) {
	first := GenerateQueries(7, 10)
	second := GenerateQueries(7, 10)

	if !reflect.DeepEqual(first, second) {
		t.Error("queries differ between runs with same seed")
	}
	for i, intent := range first {
		if len(intent.DesiredExperience) == 0 {
			t.Errorf("query %d has no desired emotions", i)
		}
	}
}

func TestRunner_Run(t *testing.T) {
	runner := NewRunner(Config{
		Seed:         42,
		ProfileCount: 50,
		QueryCount:   10,
		Limit:        5,
	})

	report, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.Deterministic {
		t.Error("Ranking should be deterministic")
	}
	if report.Latency.Count != 10 {
		t.Errorf("Latency.Count = %d, want 10", report.Latency.Count)
	}
	if report.Scores.Count == 0 {
		t.Error("Expected results across queries")
	}
	if report.Scores.Min < 0 || report.Scores.Max > 100 {
		t.Errorf("Scores out of range: min %d max %d", report.Scores.Min, report.Scores.Max)
	}
}

func TestComputeLatency(t *testing.T) {
	samples := []time.Duration{
		4 * time.Millisecond,
		1 * time.Millisecond,
		3 * time.Millisecond,
		2 * time.Millisecond,
	}

	stats := computeLatency(samples)

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if stats.Max != 4*time.Millisecond {
		t.Errorf("Max = %v, want 4ms", stats.Max)
	}
	if stats.P50 != 2*time.Millisecond {
		t.Errorf("P50 = %v, want 2ms", stats.P50)
	}
	if stats.Mean != 2500*time.Microsecond {
		t.Errorf("Mean = %v, want 2.5ms", stats.Mean)
	}
}

func TestComputeScores(t *testing.T) {
	stats := computeScores([]int{50, 80, 20})

	if stats.Min != 20 || stats.Max != 80 {
		t.Errorf("Min/Max = %d/%d, want 20/80", stats.Min, stats.Max)
	}
	if stats.Mean != 50 {
		t.Errorf("Mean = %v, want 50", stats.Mean)
	}
}

func TestComputeLatency_Empty(t *testing.T) {
	if stats := computeLatency(nil); stats.Count != 0 {
		t.Errorf("Empty samples should give zero stats, got %+v", stats)
	}
}
