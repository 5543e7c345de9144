package cmd

import (
	"shopperSpectrum/business/segment"
	"shopperSpectrum/domain"

	"github.com/spf13/cobra"
)

func newSegmentCmd(opts *rootOptions) *cobra.Command {
	var rfm domain.RFMInput

	c := &cobra.Command{
		Use:   "segment",
		Short: "Classify a customer from recency, frequency and monetary values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := opts.loadArtifacts(cmd.Context())
			if err != nil {
				return err
			}

			seg, err := segment.NewService(artifacts).Classify(cmd.Context(), rfm)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), seg)
			}
			return writeSegment(cmd.OutOrStdout(), rfm, seg)
		},
	}

	c.Flags().IntVar(&rfm.Recency, "recency", 0, "Days since last purchase")
	c.Flags().IntVar(&rfm.Frequency, "frequency", 0, "Number of purchases")
	c.Flags().Float64Var(&rfm.Monetary, "monetary", 0, "Total amount spent")
	for _, name := range []string{"recency", "frequency", "monetary"} {
		_ = c.MarkFlagRequired(name)
	}
	return c
}
