// ABOUTME: Run captures one persisted pipeline execution and its parameters
// ABOUTME: Stored alongside the output records and the trained model
package models

import "time"

// Run records the parameters and counts of one pipeline execution so a
// stored model can be reused for later vectorization.
type Run struct {
	RunID        string    `json:"run_id"`
	K            int       `json:"k"`
	Window       int       `json:"window"`
	Dim          int       `json:"dim"`
	MinTokenFreq int       `json:"min_token_freq"`
	Epochs       int       `json:"epochs"`
	Seed         int64     `json:"seed"`
	MinThreshold float64   `json:"min_threshold"`
	MaxThreshold float64   `json:"max_threshold"`
	ChainCount   int       `json:"chain_count"`
	VocabSize    int       `json:"vocab_size"`
	Rejected     int       `json:"rejected"`
	CreatedAt    time.Time `json:"created_at"`
}
