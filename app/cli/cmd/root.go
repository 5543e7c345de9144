package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopperSpectrum/domain"
	"shopperSpectrum/internal/repository/artifact"
	"shopperSpectrum/pkg/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	artifactDir string
	json        bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "shopper",
		Short:        "Product recommendations and RFM customer segments from trained artifacts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(os.Getenv("APP_ENV"))
		},
	}

	root.PersistentFlags().StringVar(&opts.artifactDir, "artifacts", defaultArtifactDir(), "Directory holding the model artifacts")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "Print results as JSON")

	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newSegmentCmd(opts))
	return root
}

// Execute is called by main.go.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultArtifactDir() string {
	if dir := os.Getenv("ARTIFACT_DIR"); dir != "" {
		return dir
	}
	return "./artifacts"
}

func (o *rootOptions) loadArtifacts(ctx context.Context) (*domain.Artifacts, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	a, err := artifact.NewStore(o.artifactDir, nil).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load artifacts from %s: %w", o.artifactDir, err)
	}
	return a, nil
}
