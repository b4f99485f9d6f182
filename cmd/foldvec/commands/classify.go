// ABOUTME: CLI command for one-off fold classification
// ABOUTME: Labels a single alpha/beta fraction pair using configured thresholds
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/fold"
)

var (
	classifyAlpha float64
	classifyBeta  float64
)

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a fold type from secondary-structure fractions",
		Long: `Classify a protein chain's fold type (alpha, beta, alpha+beta, other)
from its helix and strand fractions, using the configured thresholds
(FOLDVEC_MIN_THRESHOLD / FOLDVEC_MAX_THRESHOLD).`,
		RunE: runClassify,
		Example: `  foldvec classify --alpha 0.8 --beta 0.0
  foldvec classify --alpha 0.4 --beta 0.3`,
	}

	cmd.Flags().Float64Var(&classifyAlpha, "alpha", 0, "Helix fraction in [0,1] (required)")
	cmd.Flags().Float64Var(&classifyBeta, "beta", 0, "Strand fraction in [0,1] (required)")
	_ = cmd.MarkFlagRequired("alpha")
	_ = cmd.MarkFlagRequired("beta")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if classifyAlpha < 0 || classifyAlpha > 1 {
		return fmt.Errorf("--alpha must be in [0,1], got %g", classifyAlpha)
	}
	if classifyBeta < 0 || classifyBeta > 1 {
		return fmt.Errorf("--beta must be in [0,1], got %g", classifyBeta)
	}

	classifier := fold.NewClassifier(cfg.MinThreshold, cfg.MaxThreshold)
	fmt.Fprintln(cmd.OutOrStdout(), classifier.Classify(classifyAlpha, classifyBeta))
	return nil
}
