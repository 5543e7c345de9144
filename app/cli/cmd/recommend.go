package cmd

import (
	"errors"
	"fmt"

	"shopperSpectrum/business/recommend"
	"shopperSpectrum/domain"

	"github.com/spf13/cobra"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var k int

	c := &cobra.Command{
		Use:   "recommend <product-code>",
		Short: "List the products most similar to a stock code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifacts, err := opts.loadArtifacts(cmd.Context())
			if err != nil {
				return err
			}

			code := args[0]
			recs, err := recommend.NewService(artifacts, recommend.DefaultTopK).Recommend(cmd.Context(), code, k)
			if errors.Is(err, domain.ErrProductNotFound) {
				return fmt.Errorf("product %q not found, please check the code or try another", code)
			}
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), recs)
			}
			return writeRecommendations(cmd.OutOrStdout(), code, artifacts.Names.Name(code), recs)
		},
	}

	c.Flags().IntVarP(&k, "k", "k", recommend.DefaultTopK, "Number of recommendations")
	return c
}
