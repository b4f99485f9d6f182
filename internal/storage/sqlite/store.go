// ABOUTME: Store persists pipeline runs, output records and trained models
// ABOUTME: Feature and token vectors are stored as little-endian float64 BLOBs
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/foldlab/foldvec/internal/embed"
	"github.com/foldlab/foldvec/internal/models"
)

// Store is the persistence collaborator for the pipeline
type Store struct {
	db *DB
}

// NewStore opens a store at the given path
func NewStore(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewStoreInMemory creates an in-memory store (for testing)
func NewStoreInMemory() (*Store, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists a run header
func (s *Store) SaveRun(run *models.Run) error {
	_, err := s.db.conn.Exec(`
		INSERT INTO runs (id, k, window, dim, min_token_freq, epochs, seed,
			min_threshold, max_threshold, chain_count, vocab_size, rejected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunID, run.K, run.Window, run.Dim, run.MinTokenFreq, run.Epochs, run.Seed,
		run.MinThreshold, run.MaxThreshold, run.ChainCount, run.VocabSize, run.Rejected,
		run.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun retrieves a run by id, or nil if it does not exist
func (s *Store) GetRun(runID string) (*models.Run, error) {
	run := &models.Run{}
	err := s.db.conn.QueryRow(`
		SELECT id, k, window, dim, min_token_freq, epochs, seed,
			min_threshold, max_threshold, chain_count, vocab_size, rejected, created_at
		FROM runs WHERE id = ?
	`, runID).Scan(&run.RunID, &run.K, &run.Window, &run.Dim, &run.MinTokenFreq,
		&run.Epochs, &run.Seed, &run.MinThreshold, &run.MaxThreshold,
		&run.ChainCount, &run.VocabSize, &run.Rejected, &run.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all runs, newest first
func (s *Store) ListRuns() ([]models.Run, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, k, window, dim, min_token_freq, epochs, seed,
			min_threshold, max_threshold, chain_count, vocab_size, rejected, created_at
		FROM runs ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []models.Run
	for rows.Next() {
		var run models.Run
		if err := rows.Scan(&run.RunID, &run.K, &run.Window, &run.Dim, &run.MinTokenFreq,
			&run.Epochs, &run.Seed, &run.MinThreshold, &run.MaxThreshold,
			&run.ChainCount, &run.VocabSize, &run.Rejected, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SaveChains persists the output records of a run in one transaction,
// preserving their order
func (s *Store) SaveChains(runID string, outputs []models.OutputRecord) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO chains (run_id, position, id, alpha, beta, coil, fold_type, vector)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, out := range outputs {
		blob := vectorToBlob(out.FeatureVector)
		if _, err := stmt.Exec(runID, i, out.ID, out.Alpha, out.Beta, out.Coil,
			string(out.FoldType), blob); err != nil {
			return fmt.Errorf("saving chain %s: %w", out.ID, err)
		}
	}
	return tx.Commit()
}

// GetChains returns the output records of a run in their stored order
func (s *Store) GetChains(runID string) ([]models.OutputRecord, error) {
	rows, err := s.db.conn.Query(`
		SELECT id, alpha, beta, coil, fold_type, vector
		FROM chains WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var outputs []models.OutputRecord
	for rows.Next() {
		var (
			out      models.OutputRecord
			foldType string
			blob     []byte
		)
		if err := rows.Scan(&out.ID, &out.Alpha, &out.Beta, &out.Coil, &foldType, &blob); err != nil {
			return nil, err
		}
		out.FoldType = models.FoldType(foldType)
		out.FeatureVector = blobToVector(blob)
		outputs = append(outputs, out)
	}
	return outputs, rows.Err()
}

// SaveModel persists a trained embedding table for later vectorization
func (s *Store) SaveModel(runID string, table *embed.Table) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO model_tokens (run_id, token, vector) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, token := range table.Tokens() {
		vec, _ := table.Vector(token)
		if _, err := stmt.Exec(runID, token, vectorToBlob(vec)); err != nil {
			return fmt.Errorf("saving token %q: %w", token, err)
		}
	}
	return tx.Commit()
}

// LoadModel rebuilds the embedding table stored for a run. Returns an error
// if the run has no stored model.
func (s *Store) LoadModel(runID string) (*embed.Table, error) {
	run, err := s.GetRun(runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run %s not found", runID)
	}

	rows, err := s.db.conn.Query(`SELECT token, vector FROM model_tokens WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	vectors := make(map[string][]float64)
	for rows.Next() {
		var (
			token string
			blob  []byte
		)
		if err := rows.Scan(&token, &blob); err != nil {
			return nil, err
		}
		vectors[token] = blobToVector(blob)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("run %s has no stored model", runID)
	}
	return embed.NewTable(run.Dim, vectors)
}
