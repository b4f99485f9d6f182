// ABOUTME: CLI command to execute the full pipeline over a chain CSV file
// ABOUTME: Persists the run, its output records and the trained model
package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/loader"
	"github.com/foldlab/foldvec/internal/models"
	"github.com/foldlab/foldvec/internal/pipeline"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
)

var (
	runInput  string
	runNoSave bool
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline over a chain record file",
		Long: `Run the full pipeline over a CSV file of chain records
(id, sequence, alpha, beta, coil): label every chain with a fold type,
train the k-mer embedding over the corpus, vectorize every sequence and
persist the resulting run.

Parameters come from FOLDVEC_* environment variables (see .env support).`,
		RunE: runRun,
		Example: `  foldvec run --input chains.csv
  FOLDVEC_DIM=100 FOLDVEC_K=3 foldvec run --input chains.csv
  foldvec run --input chains.csv --no-save`,
	}

	cmd.Flags().StringVar(&runInput, "input", "", "CSV file of chain records (required)")
	cmd.Flags().BoolVar(&runNoSave, "no-save", false, "Skip persisting the run")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	// Load .env for FOLDVEC_* overrides and API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	records, err := loader.LoadChains(runInput)
	if err != nil {
		return err
	}
	if !quiet {
		log.Printf("Loaded %d chain records from %s", len(records), runInput)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	started := time.Now()
	result, err := p.Run(cmd.Context(), records)
	if err != nil {
		return err
	}

	if !runNoSave {
		store, err := sqlite.NewStore(resolveDBPath(cfg))
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer func() { _ = store.Close() }()

		run := &models.Run{
			RunID:        result.RunID,
			K:            cfg.K,
			Window:       cfg.Window,
			Dim:          cfg.Dim,
			MinTokenFreq: cfg.MinTokenFreq,
			Epochs:       cfg.Epochs,
			Seed:         cfg.Seed,
			MinThreshold: cfg.MinThreshold,
			MaxThreshold: cfg.MaxThreshold,
			ChainCount:   len(result.Outputs),
			VocabSize:    result.VocabSize,
			Rejected:     len(result.Errors),
			CreatedAt:    time.Now().UTC(),
		}
		if err := store.SaveRun(run); err != nil {
			return err
		}
		if err := store.SaveChains(result.RunID, result.Outputs); err != nil {
			return err
		}
		if result.Table != nil {
			if err := store.SaveModel(result.RunID, result.Table); err != nil {
				return err
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:      %s\n", result.RunID)
	fmt.Fprintf(out, "Chains:   %d\n", len(result.Outputs))
	fmt.Fprintf(out, "Vocab:    %d tokens\n", result.VocabSize)
	fmt.Fprintf(out, "Rejected: %d\n", len(result.Errors))
	if !quiet {
		fmt.Fprintf(out, "Elapsed:  %s\n", time.Since(started).Round(time.Millisecond))
	}
	if verbose {
		for _, recErr := range result.Errors {
			fmt.Fprintf(out, "  rejected %s\n", recErr.Error())
		}
	}
	return nil
}
