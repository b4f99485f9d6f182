// ABOUTME: Tests for run export
// ABOUTME: Verifies CSV row layout and JSON structure

package sqlite

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/foldlab/foldvec/internal/models"
)

func exportFixture(t *testing.T) *Store {
	t.Helper()
	store := testStore(t)

	run := testRun()
	if err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}
	outputs := []models.OutputRecord{
		{ID: "1STP.A", Alpha: 0.8, Beta: 0, Coil: 0.2, FoldType: models.FoldAlpha, FeatureVector: []float64{1, 2, 3, 4}},
		{ID: "4HHB.B", Alpha: 0, Beta: 0.6, Coil: 0.4, FoldType: models.FoldBeta, FeatureVector: []float64{0, 0, 0, 0}},
	}
	if err := store.SaveChains(run.RunID, outputs); err != nil {
		t.Fatalf("SaveChains() error = %v", err)
	}
	return store
}

func TestExportCSV(t *testing.T) {
	store := exportFixture(t)

	var buf bytes.Buffer
	if err := store.ExportCSV(&buf, "run_test_001"); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parsing exported csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 chains", len(rows))
	}
	if rows[0][0] != "id" || rows[0][5] != "feature_vector" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "1STP.A" || rows[1][4] != "alpha" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if parts := strings.Fields(rows[1][5]); len(parts) != 4 {
		t.Errorf("feature vector has %d components, want 4", len(parts))
	}
}

func TestExportJSON(t *testing.T) {
	store := exportFixture(t)

	var buf bytes.Buffer
	if err := store.ExportJSON(&buf, "run_test_001"); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("parsing exported json: %v", err)
	}
	if data.Run == nil || data.Run.RunID != "run_test_001" {
		t.Errorf("unexpected run: %+v", data.Run)
	}
	if len(data.Chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(data.Chains))
	}
	if data.Chains[0].FoldType != models.FoldAlpha {
		t.Errorf("first chain fold = %q", data.Chains[0].FoldType)
	}
}

func TestExport_UnknownRun(t *testing.T) {
	store := testStore(t)
	var buf bytes.Buffer
	if err := store.ExportCSV(&buf, "nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}
