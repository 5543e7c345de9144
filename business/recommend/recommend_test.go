//go:build !integration

package recommend

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"shopperSpectrum/domain"
	"testing"
)

func scenarioCatalog() (domain.Catalog, domain.SimilarityMatrix) {
	catalog := domain.NewCatalog([]string{"A", "B", "C"})
	matrix := domain.SimilarityMatrix{
		{1, 0.9, 0.1},
		{0.9, 1, 0.2},
		{0.1, 0.2, 1},
	}
	return catalog, matrix
}

func TestRecommend_DropsTopRankedAndKeepsK(t *testing.T) {
	catalog, matrix := scenarioCatalog()

	recs, err := Recommend("A", catalog, matrix, nil, 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	want := []domain.Recommendation{
		{Rank: 1, ProductCode: "B", Name: "B", Score: 0.9, RawScore: 0.9},
		{Rank: 2, ProductCode: "C", Name: "C", Score: 0.1, RawScore: 0.1},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("Recommend(A) = %+v, want %+v", recs, want)
	}
}

func TestRecommend_UnknownProduct(t *testing.T) {
	catalog, matrix := scenarioCatalog()

	for _, q := range []string{"Z", "a", "", " A"} {
		recs, err := Recommend(q, catalog, matrix, nil, 2)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("Recommend(%q) err = %v, want ErrProductNotFound", q, err)
		}
		if recs != nil {
			t.Fatalf("Recommend(%q) returned partial output %v", q, recs)
		}
	}
}

func TestRecommend_NamesFallBackToCode(t *testing.T) {
	catalog, matrix := scenarioCatalog()
	names := domain.ProductNameMap{"B": "WHITE HANGING HEART T-LIGHT HOLDER"}

	recs, err := Recommend("A", catalog, matrix, names, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if recs[0].Name != "WHITE HANGING HEART T-LIGHT HOLDER" {
		t.Fatalf("mapped name = %q", recs[0].Name)
	}
	if recs[1].Name != "C" {
		t.Fatalf("unmapped name = %q, want code", recs[1].Name)
	}
}

func TestRecommend_ResultLength(t *testing.T) {
	catalog, matrix := scenarioCatalog()

	tests := []struct {
		k    int
		want int
	}{
		{1, 1},
		{2, 2},
		{5, 2},
		{0, 2},  // default k=5 capped at n-1
		{-3, 2}, // same
	}
	for _, tt := range tests {
		recs, err := Recommend("C", catalog, matrix, nil, tt.k)
		if err != nil {
			t.Fatalf("k=%d: %v", tt.k, err)
		}
		if len(recs) != tt.want {
			t.Errorf("k=%d: len = %d, want %d", tt.k, len(recs), tt.want)
		}
	}
}

func TestRecommend_SingleProductCatalog(t *testing.T) {
	recs, err := Recommend("A", domain.NewCatalog([]string{"A"}), domain.SimilarityMatrix{{1}}, nil, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want empty result, got %v", recs)
	}
}

func TestRecommend_SkipIsPositional(t *testing.T) {
	// Row for A is not self-maximal: B outranks A against A.
	catalog := domain.NewCatalog([]string{"A", "B", "C"})
	matrix := domain.SimilarityMatrix{
		{0.5, 0.95, 0.1},
		{0.95, 1, 0.2},
		{0.1, 0.2, 1},
	}

	recs, err := Recommend("A", catalog, matrix, nil, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	got := []string{recs[0].ProductCode, recs[1].ProductCode}
	if !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("positional skip should drop B and keep A, got %v", got)
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	catalog := domain.NewCatalog([]string{"Q", "D", "B", "C", "A"})
	matrix := domain.SimilarityMatrix{
		{1, 0.5, 0.5, 0.7, 0.5},
		{0.5, 1, 0, 0, 0},
		{0.5, 0, 1, 0, 0},
		{0.7, 0, 0, 1, 0},
		{0.5, 0, 0, 0, 1},
	}

	recs, err := Recommend("Q", catalog, matrix, nil, 4)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	var codes []string
	for _, r := range recs {
		codes = append(codes, r.ProductCode)
	}
	if !reflect.DeepEqual(codes, []string{"C", "D", "B", "A"}) {
		t.Fatalf("tie order = %v, want [C D B A]", codes)
	}
}

func TestRecommend_NaNRanksLast(t *testing.T) {
	catalog := domain.NewCatalog([]string{"A", "B", "C"})
	matrix := domain.SimilarityMatrix{
		{1, math.NaN(), 0.3},
		{0, 1, 0},
		{0, 0, 1},
	}

	recs, err := Recommend("A", catalog, matrix, nil, 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if recs[0].ProductCode != "C" || recs[1].ProductCode != "B" {
		t.Fatalf("NaN should rank last, got %+v", recs)
	}
}

func TestRecommend_RoundsDisplayScoreOnly(t *testing.T) {
	catalog := domain.NewCatalog([]string{"A", "B"})
	matrix := domain.SimilarityMatrix{{1, 0.87654}, {0.87654, 1}}

	recs, err := Recommend("A", catalog, matrix, nil, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if recs[0].Score != 0.88 {
		t.Fatalf("Score = %v, want 0.88", recs[0].Score)
	}
	if recs[0].RawScore != 0.87654 {
		t.Fatalf("RawScore = %v, want 0.87654", recs[0].RawScore)
	}
}

func TestRecommend_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{0.625, 0.62},
		{0.875, 0.88},
		{-0.125, -0.12},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.raw), func(t *testing.T) {
			catalog := domain.NewCatalog([]string{"A", "B"})
			matrix := domain.SimilarityMatrix{{1, tt.raw}, {tt.raw, 1}}

			recs, err := Recommend("A", catalog, matrix, nil, 1)
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if recs[0].Score != tt.want {
				t.Fatalf("Score = %v, want %v", recs[0].Score, tt.want)
			}
			if recs[0].RawScore != tt.raw {
				t.Fatalf("RawScore = %v, want %v", recs[0].RawScore, tt.raw)
			}
		})
	}
}

func TestRecommend_RowShapeMismatch(t *testing.T) {
	catalog := domain.NewCatalog([]string{"A", "B", "C"})
	matrix := domain.SimilarityMatrix{{1, 0.2}}

	if _, err := Recommend("A", catalog, matrix, nil, 2); !errors.Is(err, domain.ErrInvalidArtifact) {
		t.Fatalf("err = %v, want ErrInvalidArtifact", err)
	}
	if _, err := Recommend("C", catalog, matrix, nil, 2); !errors.Is(err, domain.ErrInvalidArtifact) {
		t.Fatalf("err = %v, want ErrInvalidArtifact", err)
	}
}

func randomArtifacts(n int, seed int64) (domain.Catalog, domain.SimilarityMatrix) {
	rng := rand.New(rand.NewSource(seed))
	codes := make([]string, n)
	for i := range codes {
		codes[i] = string(rune('a'+i%26)) + string(rune('0'+i/26%10))
	}
	matrix := make(domain.SimilarityMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		matrix[i][i] = 1
		for j := i + 1; j < n; j++ {
			// coarse values to force ties
			v := float64(rng.Intn(10)) / 10
			matrix[i][j], matrix[j][i] = v, v
		}
	}
	return domain.NewCatalog(codes), matrix
}

func TestRecommend_Properties(t *testing.T) {
	catalog, matrix := randomArtifacts(40, 7)

	for _, q := range catalog.Codes() {
		for _, k := range []int{1, 5, 39, 100} {
			recs, err := Recommend(q, catalog, matrix, nil, k)
			if err != nil {
				t.Fatalf("Recommend(%s, %d): %v", q, k, err)
			}

			want := k
			if want > catalog.Len()-1 {
				want = catalog.Len() - 1
			}
			if len(recs) != want {
				t.Fatalf("Recommend(%s, %d): len = %d, want %d", q, k, len(recs), want)
			}

			for i := 1; i < len(recs); i++ {
				if recs[i].RawScore > recs[i-1].RawScore {
					t.Fatalf("Recommend(%s, %d): scores increase at %d", q, k, i)
				}
			}

			again, _ := Recommend(q, catalog, matrix, nil, k)
			if !reflect.DeepEqual(recs, again) {
				t.Fatalf("Recommend(%s, %d) not deterministic", q, k)
			}
		}
	}
}
