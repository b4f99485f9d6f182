// ABOUTME: CLI command to export a stored run as CSV or JSON
// ABOUTME: Writes to stdout or a file
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
)

var (
	exportRun    string
	exportFormat string
	exportOut    string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored run's output records",
		Long: `Export the output records of a stored run (id, fractions, fold type
and feature vector per chain) as CSV or JSON.`,
		RunE: runExport,
		Example: `  foldvec export --run 4f6c... --format csv
  foldvec export --run 4f6c... --format json --out run.json`,
	}

	cmd.Flags().StringVar(&exportRun, "run", "", "Run ID to export (required)")
	cmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	_ = cmd.MarkFlagRequired("run")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	switch exportFormat {
	case "csv":
		return store.ExportCSV(out, exportRun)
	case "json":
		return store.ExportJSON(out, exportRun)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
}
