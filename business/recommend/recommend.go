package recommend

import (
	"fmt"
	"math"
	"shopperSpectrum/domain"
	"sort"
)

const (
	DefaultTopK    = 5
	scorePrecision = 2
)

type scoredIndex struct {
	index int
	score float64
}

// Recommend returns the k products most similar to query, ranked by the
// query's row in matrix.
//
// The whole row is ranked (the query included), then the first ranked
// position is dropped and the next k kept. The skip is positional: if another
// product outscores the query against itself, that product is the one
// dropped and the query can appear in the result.
func Recommend(
	query string,
	catalog domain.Catalog,
	matrix domain.SimilarityMatrix,
	names domain.ProductNameMap,
	k int,
) ([]domain.Recommendation, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	i, ok := catalog.IndexOf(query)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, query)
	}
	if i >= len(matrix) || len(matrix[i]) != catalog.Len() {
		return nil, fmt.Errorf("%w: similarity row for %s does not match the product list", domain.ErrInvalidArtifact, query)
	}

	row := matrix[i]
	ranked := make([]scoredIndex, len(row))
	for j, score := range row {
		ranked[j] = scoredIndex{index: j, score: score}
	}

	// stable: equal scores keep ascending catalog order
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranksBefore(ranked[a].score, ranked[b].score)
	})

	if len(ranked) <= 1 {
		return []domain.Recommendation{}, nil
	}
	ranked = ranked[1:]
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	recs := make([]domain.Recommendation, 0, len(ranked))
	for pos, r := range ranked {
		code := catalog.CodeAt(r.index)
		recs = append(recs, domain.Recommendation{
			Rank:        pos + 1,
			ProductCode: code,
			Name:        names.Name(code),
			Score:       roundScore(r.score),
			RawScore:    r.score,
		})
	}

	return recs, nil
}

// ranksBefore orders scores descending with NaN after every number.
func ranksBefore(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

// roundScore rounds half to even, so 0.125 displays as 0.12.
func roundScore(v float64) float64 {
	p := math.Pow(10, scorePrecision)
	return math.RoundToEven(v*p) / p
}
