// ABOUTME: CLI command to vectorize a sequence against a stored run's model
// ABOUTME: Prints the feature vector as JSON
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
	"github.com/foldlab/foldvec/internal/tokenize"
)

var (
	vectorizeRun      string
	vectorizeSequence string
)

// NewVectorizeCmd creates the vectorize command
func NewVectorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectorize",
		Short: "Vectorize a residue sequence with a stored model",
		Long: `Compute the fixed-length feature vector of a residue sequence using
the embedding model persisted by an earlier run. Tokens outside the
trained vocabulary are skipped; a sequence with no known tokens yields
the zero vector.`,
		RunE: runVectorize,
		Example: `  foldvec vectorize --run 4f6c... --sequence SNAMMSE`,
	}

	cmd.Flags().StringVar(&vectorizeRun, "run", "", "Run ID of a stored model (required)")
	cmd.Flags().StringVar(&vectorizeSequence, "sequence", "", "Residue sequence (required)")
	_ = cmd.MarkFlagRequired("run")
	_ = cmd.MarkFlagRequired("sequence")

	return cmd
}

func runVectorize(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(resolveDBPath(cfg))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = store.Close() }()

	run, err := store.GetRun(vectorizeRun)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %s not found", vectorizeRun)
	}
	table, err := store.LoadModel(vectorizeRun)
	if err != nil {
		return err
	}

	sequence := strings.ToUpper(strings.TrimSpace(vectorizeSequence))
	vector := table.Mean(tokenize.Kmers(sequence, run.K))

	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(map[string]interface{}{
		"run_id":         run.RunID,
		"dim":            table.Dim(),
		"feature_vector": vector,
	})
}
