// ABOUTME: FoldType is the coarse categorical label for a chain's fold
// ABOUTME: Derived from alpha/beta secondary-structure fractions
package models

// FoldType summarizes a chain's secondary-structure composition
type FoldType string

const (
	// FoldAlpha - chain is dominated by helices
	FoldAlpha FoldType = "alpha"

	// FoldBeta - chain is dominated by strands
	FoldBeta FoldType = "beta"

	// FoldAlphaBeta - chain has substantial helix and strand content
	FoldAlphaBeta FoldType = "alpha+beta"

	// FoldOther - everything that matches none of the above
	FoldOther FoldType = "other"
)
