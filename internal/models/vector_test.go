// ABOUTME: Tests for EmotionVector arithmetic and validation
// ABOUTME: Verifies normalization, dot product padding, and finiteness checks
package models

import (
	"math"
	"testing"
)

func TestEmotionVector_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   EmotionVector
		wantNorm float64
	}{
		{"already unit", EmotionVector{1, 0, 0}, 1.0},
		{"scaled down", EmotionVector{3, 4, 0}, 1.0},
		{"small components", EmotionVector{0.1, 0.2, 0.05}, 1.0},
		{"zero vector stays zero", EmotionVector{0, 0, 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.vector.Normalize()
			if math.Abs(got.Norm()-tt.wantNorm) > 1e-6 {
				t.Errorf("Normalize().Norm() = %f, want %f", got.Norm(), tt.wantNorm)
			}
		})
	}
}

func TestEmotionVector_Normalize_DoesNotMutate(t *testing.T) {
	v := EmotionVector{3, 4}
	_ = v.Normalize()
	if v[0] != 3 || v[1] != 4 {
		t.Errorf("Normalize mutated receiver: %v", v)
	}
}

func TestEmotionVector_Dot(t *testing.T) {
	tests := []struct {
		name string
		a    EmotionVector
		b    EmotionVector
		want float64
	}{
		{"orthogonal", EmotionVector{1, 0}, EmotionVector{0, 1}, 0},
		{"identical units", EmotionVector{1, 0}, EmotionVector{1, 0}, 1},
		{"opposite", EmotionVector{1, 0}, EmotionVector{-1, 0}, -1},
		{"mixed", EmotionVector{0.5, 0.5}, EmotionVector{0.5, 0.25}, 0.375},
		{"shorter operand zero-padded", EmotionVector{1, 1, 1}, EmotionVector{2}, 2},
		{"empty operand", EmotionVector{1, 2}, EmotionVector{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Dot() = %f, want %f", got, tt.want)
			}
			// Dot is symmetric regardless of length mismatch
			if got := tt.b.Dot(tt.a); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Dot() reversed = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestEmotionVector_IsFinite(t *testing.T) {
	tests := []struct {
		name   string
		vector EmotionVector
		want   bool
	}{
		{"finite", EmotionVector{0.1, -0.2, 0}, true},
		{"empty", EmotionVector{}, true},
		{"NaN component", EmotionVector{0.1, math.NaN()}, false},
		{"positive infinity", EmotionVector{math.Inf(1), 0}, false},
		{"negative infinity", EmotionVector{0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmotionVector_PadTo(t *testing.T) {
	v := EmotionVector{0.5, 0.5}

	padded := v.PadTo(4)
	if len(padded) != 4 {
		t.Fatalf("PadTo(4) length = %d, want 4", len(padded))
	}
	if padded[2] != 0 || padded[3] != 0 {
		t.Errorf("PadTo(4) trailing components = %v, want zeros", padded[2:])
	}

	// Already long enough: copy, not truncation
	same := v.PadTo(1)
	if len(same) != 2 {
		t.Errorf("PadTo(1) length = %d, want 2 (never truncates)", len(same))
	}

	// Returned slices are independent copies
	padded[0] = 99
	if v[0] != 0.5 {
		t.Errorf("PadTo shares backing array with receiver")
	}
}

func TestEmotionVector_IsZero(t *testing.T) {
	if !(EmotionVector{0, 0, 0}).IsZero() {
		t.Error("all-zero vector reported non-zero")
	}
	if (EmotionVector{0, 1e-12, 0}).IsZero() {
		t.Error("vector with tiny component reported zero")
	}
	if !(EmotionVector{}).IsZero() {
		t.Error("empty vector should count as zero")
	}
}

func TestEmotionVector_ValidateDimension(t *testing.T) {
	tests := []struct {
		name        string
		vector      EmotionVector
		lexiconSize int
		wantErr     bool
	}{
		{"exact match", NewEmotionVector(30), 30, false},
		{"older shorter vector", NewEmotionVector(28), 30, false},
		{"longer than lexicon", NewEmotionVector(31), 30, true},
		{"empty", EmotionVector{}, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vector.ValidateDimension(tt.lexiconSize)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
