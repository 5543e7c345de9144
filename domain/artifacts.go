package domain

import (
	"fmt"
	"time"
)

// Artifacts is the model state loaded once at startup. It is shared by all
// requests and never written after Validate succeeds.
type Artifacts struct {
	Catalog    Catalog
	Similarity SimilarityMatrix
	Names      ProductNameMap
	Scaler     Scaler
	Model      ClusterModel
	Labels     ClusterLabelMap

	Source   string
	LoadedAt time.Time
}

func (a *Artifacts) Validate() error {
	n := a.Catalog.Len()
	if n == 0 {
		return fmt.Errorf("%w: empty product list", ErrInvalidArtifact)
	}
	if a.Similarity.Dim() != n {
		return fmt.Errorf("%w: similarity matrix has %d rows, product list has %d entries", ErrInvalidArtifact, a.Similarity.Dim(), n)
	}
	for i, row := range a.Similarity {
		if len(row) != n {
			return fmt.Errorf("%w: similarity row %d has %d columns, want %d", ErrInvalidArtifact, i, len(row), n)
		}
	}
	if a.Scaler == nil {
		return fmt.Errorf("%w: missing scaler", ErrInvalidArtifact)
	}
	if a.Model == nil {
		return fmt.Errorf("%w: missing cluster model", ErrInvalidArtifact)
	}
	return nil
}
