// ABOUTME: OutputRecord is the final flat artifact produced per chain
// ABOUTME: Projection of fractions, fold label and the feature vector
package models

// OutputRecord is the projection the pipeline hands to persistence. The
// feature vector always has the run's configured dimensionality; a chain
// whose sequence produced no in-vocabulary tokens carries a zero vector.
type OutputRecord struct {
	ID            string    `json:"id"`
	Alpha         float64   `json:"alpha"`
	Beta          float64   `json:"beta"`
	Coil          float64   `json:"coil"`
	FoldType      FoldType  `json:"fold_type"`
	FeatureVector []float64 `json:"feature_vector"`
}
