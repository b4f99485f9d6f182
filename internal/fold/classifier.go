// ABOUTME: Classifier assigns a coarse fold type from secondary-structure fractions
// ABOUTME: Ordered threshold rules over the alpha and beta fractions, first match wins
package fold

import "github.com/foldlab/foldvec/internal/models"

// Classifier labels chains by comparing their helix and strand fractions
// against a lower and an upper threshold
type Classifier struct {
	minThreshold float64 // below this a structure class is considered absent
	maxThreshold float64 // above this a structure class is considered dominant
}

// NewClassifier creates a Classifier with the given thresholds.
// minThreshold must be strictly below maxThreshold.
func NewClassifier(minThreshold, maxThreshold float64) *Classifier {
	return &Classifier{
		minThreshold: minThreshold,
		maxThreshold: maxThreshold,
	}
}

// Classify returns the fold type for the given alpha and beta fractions.
// Rules are evaluated in order, first match wins:
//
//	alpha dominant and beta absent         -> alpha
//	beta dominant and alpha absent         -> beta
//	alpha dominant and beta dominant       -> alpha+beta
//	anything else                          -> other
//
// The alpha+beta branch deliberately requires beta above the *upper*
// threshold, so a chain with dominant alpha and middling beta is "other".
func (c *Classifier) Classify(alpha, beta float64) models.FoldType {
	switch {
	case alpha > c.maxThreshold && beta < c.minThreshold:
		return models.FoldAlpha
	case beta > c.maxThreshold && alpha < c.minThreshold:
		return models.FoldBeta
	case alpha > c.maxThreshold && beta > c.maxThreshold:
		return models.FoldAlphaBeta
	default:
		return models.FoldOther
	}
}
