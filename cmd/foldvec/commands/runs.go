// ABOUTME: CLI command to list stored pipeline runs
// ABOUTME: Shows run id, age, parameters and record counts
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
)

// NewRunsCmd creates the runs command
func NewRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List stored pipeline runs",
		Long:  `List all runs in the store with their parameters and record counts.`,
		RunE:  runRuns,
	}
}

func runRuns(cmd *cobra.Command, args []string) error {
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

	runs, err := store.ListRuns()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs stored.")
		return nil
	}

	fmt.Fprintf(out, "%-38s %-12s %6s %6s %4s %4s %7s\n",
		"RUN", "CREATED", "CHAINS", "VOCAB", "K", "DIM", "REJECT")
	for _, run := range runs {
		fmt.Fprintf(out, "%-38s %-12s %6d %6d %4d %4d %7d\n",
			truncate(run.RunID, 38),
			formatTime(run.CreatedAt),
			run.ChainCount,
			run.VocabSize,
			run.K,
			run.Dim,
			run.Rejected)
	}
	return nil
}
