// ABOUTME: Tests for the chain record CSV loader
// ABOUTME: Verifies header handling, normalization and malformed-row errors

package loader

import (
	"strings"
	"testing"
)

func TestReadChains_WithHeader(t *testing.T) {
	csv := `id,sequence,alpha,beta,coil
1STP.A,SNAMMSE,0.1,0.6,0.3
4HHB.B,mskgeelft,0.8,0.0,0.2
`
	records, err := ReadChains(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadChains() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].ID != "1STP.A" {
		t.Errorf("ID = %q", records[0].ID)
	}
	if records[0].Alpha != 0.1 || records[0].Beta != 0.6 || records[0].Coil != 0.3 {
		t.Errorf("fractions = %g/%g/%g", records[0].Alpha, records[0].Beta, records[0].Coil)
	}
	// Sequences are uppercased
	if records[1].Sequence != "MSKGEELFT" {
		t.Errorf("Sequence = %q, want uppercased", records[1].Sequence)
	}
}

func TestReadChains_WithoutHeader(t *testing.T) {
	csv := "1STP.A,SNAMMSE,0.1,0.6,0.3\n"
	records, err := ReadChains(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadChains() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestReadChains_Empty(t *testing.T) {
	records, err := ReadChains(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadChains() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestReadChains_Malformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"bad alpha", "1STP.A,SNAMMSE,high,0.6,0.3\n"},
		{"bad beta on second row", "1STP.A,SNAMMSE,0.1,0.6,0.3\n4HHB.B,MSKGE,0.2,x,0.1\n"},
		{"too few columns", "1STP.A,SNAMMSE,0.1\n"},
		{"too many columns", "1STP.A,SNAMMSE,0.1,0.6,0.3,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadChains(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected error for malformed input")
			}
		})
	}
}

func TestLoadChains_MissingFile(t *testing.T) {
	if _, err := LoadChains("/nonexistent/chains.csv"); err == nil {
		t.Error("expected error for missing file")
	}
}
