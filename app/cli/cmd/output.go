package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shopperSpectrum/domain"

	"github.com/goccy/go-json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRecommendations(w io.Writer, code, name string, recs []domain.Recommendation) error {
	fmt.Fprintf(w, "Products similar to %s (%s):\n\n", code, name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCODE\tNAME\tSCORE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\n", r.Rank, r.ProductCode, r.Name, r.Score)
	}
	return tw.Flush()
}

func writeSegment(w io.Writer, rfm domain.RFMInput, seg domain.Segment) error {
	_, err := fmt.Fprintf(w, "Recency=%d Frequency=%d Monetary=%.2f\nSegment: %s (cluster %d, %s)\n",
		rfm.Recency, rfm.Frequency, rfm.Monetary, seg.Label, seg.ClusterIndex, seg.Color)
	return err
}
