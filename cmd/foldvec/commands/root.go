// ABOUTME: Root command and global flags for the foldvec CLI
// ABOUTME: Wires all subcommands and the shared database path flag
package commands

import (
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
)

// Global flags shared by all commands
var (
	verbose bool
	quiet   bool
	dbPath  string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foldvec",
		Short: "Fold classification and k-mer embedding for protein chains",
		Long: `foldvec labels protein chains with a coarse fold type from their
secondary-structure composition and reduces each residue sequence to a
fixed-length feature vector via a k-mer embedding trained on the input
corpus. Runs are persisted to a local SQLite store for export and reuse.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the run database (default: XDG data dir)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewRunCmd(),
		NewClassifyCmd(),
		NewVectorizeCmd(),
		NewExportCmd(),
		NewRunsCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// resolveDBPath picks the database path: --db flag, then FOLDVEC_DB, then
// the XDG default
func resolveDBPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return sqlite.DefaultDBPath()
}
