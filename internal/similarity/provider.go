// Package similarity provides pluggable text-embedding backends and the
// vector math the gap matcher runs on top of them.
package similarity

import (
	"context"
	"errors"
	"math"
)

// ErrUnavailable reports that the embedding backend cannot be reached
// or is not configured. Callers are expected to degrade to lexical
// matching rather than fail the analysis.
var ErrUnavailable = errors.New("similarity provider unavailable")

// Provider maps a batch of skill-name strings to fixed-size vectors.
// Encode is order-preserving: result[i] corresponds to names[i].
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name identifies the backend in result metadata.
	Name() string
	// Encode embeds the given names in one batched call.
	Encode(ctx context.Context, names []string) ([][]float32, error)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched or zero-length vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Matrix computes pairwise cosine similarities: result[i][j] is the
// similarity between rows[i] and cols[j].
func Matrix(rows, cols [][]float32) [][]float64 {
	m := make([][]float64, len(rows))
	for i := range rows {
		m[i] = make([]float64, len(cols))
		for j := range cols {
			m[i][j] = Cosine(rows[i], cols[j])
		}
	}
	return m
}
