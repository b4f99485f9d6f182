// ABOUTME: SQLite schema for the foldvec run store
// ABOUTME: Creates the runs, chains and model_tokens tables
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Pipeline runs with the parameters that produced them
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    k INTEGER NOT NULL,
    window INTEGER NOT NULL,
    dim INTEGER NOT NULL,
    min_token_freq INTEGER NOT NULL,
    epochs INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    min_threshold REAL NOT NULL,
    max_threshold REAL NOT NULL,
    chain_count INTEGER NOT NULL DEFAULT 0,
    vocab_size INTEGER NOT NULL DEFAULT 0,
    rejected INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Output records, one per accepted chain
CREATE TABLE IF NOT EXISTS chains (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    id TEXT NOT NULL,
    alpha REAL NOT NULL,
    beta REAL NOT NULL,
    coil REAL NOT NULL,
    fold_type TEXT NOT NULL,
    vector BLOB NOT NULL,
    PRIMARY KEY (run_id, id)
);

CREATE INDEX IF NOT EXISTS idx_chains_run_position ON chains(run_id, position);

-- Trained embedding table, one row per retained token
CREATE TABLE IF NOT EXISTS model_tokens (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    token TEXT NOT NULL,
    vector BLOB NOT NULL,
    PRIMARY KEY (run_id, token)
);
`
