// ABOUTME: Table is the frozen token-to-vector mapping produced by training
// ABOUTME: Provides lookup and mean pooling of token vectors into one feature vector
package embed

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Table maps every retained token to a dense vector of fixed length. A Table
// is built once per run and never mutated afterwards, so it may be shared
// across any number of concurrent readers without locking.
type Table struct {
	dim     int
	vectors map[string][]float64
}

// NewTable builds a Table from an existing token-to-vector mapping, e.g. one
// loaded back from storage. Every vector must have length dim.
func NewTable(dim int, vectors map[string][]float64) (*Table, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("table dimension must be positive, got %d", dim)
	}
	for token, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("token %q has vector length %d, want %d", token, len(vec), dim)
		}
	}
	return &Table{dim: dim, vectors: vectors}, nil
}

// Dim returns the vector dimensionality
func (t *Table) Dim() int {
	return t.dim
}

// Len returns the number of tokens in the table
func (t *Table) Len() int {
	return len(t.vectors)
}

// Vector returns the vector for token and whether the token is present.
// Callers must not modify the returned slice.
func (t *Table) Vector(token string) ([]float64, bool) {
	vec, ok := t.vectors[token]
	return vec, ok
}

// Tokens returns all tokens in sorted order for deterministic iteration
func (t *Table) Tokens() []string {
	tokens := make([]string, 0, len(t.vectors))
	for token := range t.vectors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Mean reduces a token sequence to one vector: the elementwise arithmetic
// mean of the vectors of all tokens present in the table. Tokens absent from
// the table are skipped and do not count in the denominator. If no token is
// present (including an empty sequence), the result is a zero vector of the
// table's dimensionality. The table itself is never modified.
func (t *Table) Mean(tokens []string) []float64 {
	mean := make([]float64, t.dim)
	found := 0
	for _, token := range tokens {
		vec, ok := t.vectors[token]
		if !ok {
			continue
		}
		floats.Add(mean, vec)
		found++
	}
	if found > 0 {
		floats.Scale(1/float64(found), mean)
	}
	return mean
}
