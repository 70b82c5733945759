// ABOUTME: EmotionVector is the fixed-dimension numeric representation of emotional signals
// ABOUTME: Provides normalization, dot product, and finiteness checks for similarity ranking
package models

import (
	"fmt"
	"math"
)

// EmotionVector is a dense vector in the lexicon's emotion space. After
// encoding it is either the zero vector or unit-normalized; dimensions with
// no signal are 0. Vectors encoded against an older, smaller lexicon are
// zero-padded for new trailing dimensions.
type EmotionVector []float64

// NewEmotionVector allocates a zero vector of the given dimensionality.
func NewEmotionVector(dim int) EmotionVector {
	return make(EmotionVector, dim)
}

// Norm returns the Euclidean norm.
func (v EmotionVector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns a unit-length copy of the vector. The zero vector
// normalizes to itself (a valid low-information result, not an error).
func (v EmotionVector) Normalize() EmotionVector {
	out := v.Clone()
	norm := v.Norm()
	if norm == 0 {
		return out
	}
	for i := range out {
		out[i] /= norm
	}
	return out
}

// Dot returns the dot product. Vectors of different lengths are compared as
// if the shorter were zero-padded, which is how lexicon growth is handled.
func (v EmotionVector) Dot(other EmotionVector) float64 {
	n := len(v)
	if len(other) < n {
		n = len(other)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += v[i] * other[i]
	}
	return sum
}

// IsZero reports whether every component is exactly zero.
func (v EmotionVector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component is a finite number. Ranking
// validates candidates with this before comparison so a NaN or Inf from an
// upstream encoding bug cannot poison the whole pass.
func (v EmotionVector) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// PadTo returns a copy extended with trailing zeros to dim. A vector already
// at or beyond dim is returned as an unmodified copy.
func (v EmotionVector) PadTo(dim int) EmotionVector {
	if len(v) >= dim {
		return v.Clone()
	}
	out := make(EmotionVector, dim)
	copy(out, v)
	return out
}

// Clone returns an independent copy.
func (v EmotionVector) Clone() EmotionVector {
	out := make(EmotionVector, len(v))
	copy(out, v)
	return out
}

// ValidateDimension verifies the vector round-trips as an ordered array of
// reals of the lexicon's length. Shorter stored vectors are allowed (older
// lexicon snapshots); longer ones are not.
func (v EmotionVector) ValidateDimension(lexiconSize int) error {
	if len(v) == 0 {
		return fmt.Errorf("emotion vector cannot be empty")
	}
	if len(v) > lexiconSize {
		return fmt.Errorf("emotion vector dimension mismatch: got %d, lexicon has %d", len(v), lexiconSize)
	}
	return nil
}
