package domain

import (
	"math"
	"time"
)

// InterestVector is a user's personalization vector plus bookkeeping
// about the signal that last moved it. The vector is L2-normalized on
// every write; a user with no signals yet has no vector at all.
type InterestVector struct {
	Vector     []float32
	LastSignal SignalKind
	UpdatedAt  time.Time
}

// ApplyInterestSignal pulls the current vector toward the entry embedding
// by weight w: next[i] = (1-w)*current[i] + w*embedding[i].
//
// current may be nil or of mismatched length, in which case it is treated
// as a zero vector of the embedding's length. Non-finite coordinates from
// upstream data are coerced to zero rather than propagated.
func ApplyInterestSignal(current, embedding []float32, w float64) []float32 {
	next := make([]float32, len(embedding))
	for i, e := range embedding {
		var c float64
		if len(current) == len(embedding) {
			c = float64(current[i])
		}
		v := (1-w)*c + w*float64(e)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		next[i] = float32(v)
	}
	return next
}

// NormalizeL2 scales v to unit length in place and returns it.
// An all-zero vector is returned unchanged.
func NormalizeL2(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	norm := math.Sqrt(sumSquares)
	if norm == 0 {
		return v
	}
	for i, x := range v {
		v[i] = float32(float64(x) / norm)
	}
	return v
}
