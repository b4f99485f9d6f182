// ABOUTME: ChainRecord is the per-protein-chain input record for the pipeline
// ABOUTME: Carries the residue sequence and secondary-structure fractions
package models

import "fmt"

// ChainRecord is one protein chain as produced by upstream extraction,
// identified by structure ID plus chain letter (e.g. "1STP.A"). Alpha, Beta
// and Coil are the fractions of residues assigned to helix, strand and
// neither; they need not sum to 1 because some residues carry no
// secondary-structure assignment. Records are immutable once produced.
type ChainRecord struct {
	ID       string  `json:"id"`
	Sequence string  `json:"sequence"`
	Alpha    float64 `json:"alpha"`
	Beta     float64 `json:"beta"`
	Coil     float64 `json:"coil"`
}

// Validate checks that the record is usable by the pipeline
func (r *ChainRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("chain record has empty id")
	}
	if r.Sequence == "" {
		return fmt.Errorf("chain %s has empty sequence", r.ID)
	}
	fractions := []struct {
		name  string
		value float64
	}{
		{"alpha", r.Alpha},
		{"beta", r.Beta},
		{"coil", r.Coil},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("chain %s: %s fraction %g outside [0,1]", r.ID, f.name, f.value)
		}
	}
	return nil
}
