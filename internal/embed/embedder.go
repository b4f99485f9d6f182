// ABOUTME: SequenceEmbedder abstracts how a residue sequence becomes a feature vector
// ABOUTME: Implemented by the local table-backed embedder and the remote OpenAI backend
package embed

import (
	"context"

	"github.com/foldlab/foldvec/internal/tokenize"
)

// SequenceEmbedder produces one fixed-length feature vector per residue
// sequence. Implementations must be safe for concurrent use.
type SequenceEmbedder interface {
	// Embed returns the feature vector for the given sequence
	Embed(ctx context.Context, sequence string) ([]float64, error)

	// Dim returns the dimensionality of the output vectors
	Dim() int
}

// TableEmbedder vectorizes sequences against a frozen embedding table by
// tokenizing into k-mers and mean-pooling the token vectors. It never fails:
// a sequence with no in-vocabulary tokens maps to the zero vector.
type TableEmbedder struct {
	table *Table
	k     int
}

// NewTableEmbedder wraps a trained table and the k used to tokenize
func NewTableEmbedder(table *Table, k int) *TableEmbedder {
	return &TableEmbedder{table: table, k: k}
}

// Embed implements SequenceEmbedder
func (e *TableEmbedder) Embed(_ context.Context, sequence string) ([]float64, error) {
	return e.table.Mean(tokenize.Kmers(sequence, e.k)), nil
}

// Dim implements SequenceEmbedder
func (e *TableEmbedder) Dim() int {
	return e.table.Dim()
}
