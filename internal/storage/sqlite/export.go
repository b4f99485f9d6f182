// ABOUTME: Export of stored runs to CSV or JSON
// ABOUTME: One row/object per chain; vectors serialized inline
package sqlite

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/foldlab/foldvec/internal/models"
)

// ExportData is the complete exportable shape of one run
type ExportData struct {
	Run    *models.Run           `json:"run"`
	Chains []models.OutputRecord `json:"chains"`
}

// ExportJSON writes a run and its output records as indented JSON
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	data, err := s.exportData(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a run's output records as CSV. The feature vector is one
// quoted field of space-separated components.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	data, err := s.exportData(runID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "alpha", "beta", "coil", "fold_type", "feature_vector"}); err != nil {
		return err
	}
	for _, out := range data.Chains {
		row := []string{
			out.ID,
			formatFloat(out.Alpha),
			formatFloat(out.Beta),
			formatFloat(out.Coil),
			string(out.FoldType),
			formatVector(out.FeatureVector),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (s *Store) exportData(runID string) (*ExportData, error) {
	run, err := s.GetRun(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	chains, err := s.GetChains(runID)
	if err != nil {
		return nil, err
	}
	return &ExportData{Run: run, Chains: chains}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatVector(vec []float64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}
