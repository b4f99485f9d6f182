// ABOUTME: CSV loader for chain records (id, sequence, alpha, beta, coil)
// ABOUTME: Accepts an optional header row; malformed rows fail the load
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/foldlab/foldvec/internal/models"
)

// fieldCount is the number of columns in a chain record row
const fieldCount = 5

// LoadChains reads chain records from a CSV file.
// Expected columns: id, sequence, alpha, beta, coil.
func LoadChains(path string) ([]models.ChainRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chain file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadChains(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadChains parses chain records from CSV data. A first row whose fraction
// columns do not parse as numbers is treated as a header and skipped.
// Sequences are uppercased; surrounding whitespace is trimmed everywhere.
func ReadChains(r io.Reader) ([]models.ChainRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = fieldCount
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	var records []models.ChainRecord
	for i, row := range rows {
		record, err := parseRow(row)
		if err != nil {
			if i == 0 && isHeader(row) {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string) (models.ChainRecord, error) {
	record := models.ChainRecord{
		ID:       strings.TrimSpace(row[0]),
		Sequence: strings.ToUpper(strings.TrimSpace(row[1])),
	}

	fractions := []struct {
		name string
		dst  *float64
	}{
		{"alpha", &record.Alpha},
		{"beta", &record.Beta},
		{"coil", &record.Coil},
	}
	for i, f := range fractions {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+2]), 64)
		if err != nil {
			return models.ChainRecord{}, fmt.Errorf("bad %s fraction %q", f.name, row[i+2])
		}
		*f.dst = v
	}
	return record, nil
}

// isHeader reports whether a row looks like the conventional column header
func isHeader(row []string) bool {
	return strings.EqualFold(strings.TrimSpace(row[0]), "id") &&
		strings.EqualFold(strings.TrimSpace(row[1]), "sequence")
}
