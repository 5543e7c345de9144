package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"shopperSpectrum/business/segment"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// NameRepository supplies display names that take precedence over the
// names file for the codes it covers.
type NameRepository interface {
	FindProductNames(ctx context.Context) (map[string]string, error)
}

type scalerFile struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type modelFile struct {
	ClusterCenters [][]float64 `json:"cluster_centers"`
}

type Store struct {
	dir   string
	names NameRepository
	now   func() time.Time
}

func NewStore(dir string, names NameRepository) *Store {
	return &Store{
		dir:   dir,
		names: names,
		now:   time.Now,
	}
}

// Load reads and validates every artifact in the store directory. Any
// failure is wrapped in domain.ErrInvalidArtifact.
func (s *Store) Load(ctx context.Context) (*domain.Artifacts, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	m, err := loadManifest(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidArtifact, err)
	}

	var codes []string
	if err := s.readJSON(m.ProductsFile, &codes); err != nil {
		return nil, err
	}

	matrix, err := s.loadSimilarity(m.SimilarityFile)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	if err := s.readJSON(m.NamesFile, &names); err != nil {
		return nil, err
	}
	if s.names != nil {
		dbNames, err := s.names.FindProductNames(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot load product names: %w", domain.ErrInvalidArtifact, err)
		}
		for code, name := range dbNames {
			names[code] = name
		}
	}

	scaler, model, err := s.loadModels(m)
	if err != nil {
		return nil, err
	}

	labels := domain.DefaultClusterLabels()
	if len(m.Labels) > 0 {
		labels = domain.ClusterLabelMap(m.Labels)
	}

	a := &domain.Artifacts{
		Catalog:    domain.NewCatalog(codes),
		Similarity: matrix,
		Names:      domain.ProductNameMap(names),
		Scaler:     scaler,
		Model:      model,
		Labels:     labels,
		Source:     s.dir,
		LoadedAt:   s.now(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Artifacts loaded",
		"dir", s.dir,
		"products", a.Catalog.Len(),
		"names", len(a.Names),
		"clusters", model.NumClusters(),
	)

	return a, nil
}

func (s *Store) loadSimilarity(name string) (domain.SimilarityMatrix, error) {
	path := filepath.Join(s.dir, name)

	if strings.EqualFold(filepath.Ext(name), ".json") {
		var matrix [][]float64
		if err := s.readJSON(name, &matrix); err != nil {
			return nil, err
		}
		return matrix, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open similarity matrix %s: %w", domain.ErrInvalidArtifact, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot stat similarity matrix %s: %w", domain.ErrInvalidArtifact, path, err)
	}

	matrix, err := readNPY(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: invalid similarity matrix %s: %w", domain.ErrInvalidArtifact, path, err)
	}
	return matrix, nil
}

func (s *Store) loadModels(m Manifest) (*segment.StandardScaler, *segment.KMeans, error) {
	features := len(domain.RFMInput{}.Vector())

	var sf scalerFile
	if err := s.readJSON(m.ScalerFile, &sf); err != nil {
		return nil, nil, err
	}
	scaler, err := segment.NewStandardScaler(sf.Mean, sf.Scale)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidArtifact, m.ScalerFile, err)
	}
	if scaler.NumFeatures() != features {
		return nil, nil, fmt.Errorf("%w: %s: scaler has %d features, want %d", domain.ErrInvalidArtifact, m.ScalerFile, scaler.NumFeatures(), features)
	}

	var mf modelFile
	if err := s.readJSON(m.ModelFile, &mf); err != nil {
		return nil, nil, err
	}
	model, err := segment.NewKMeans(mf.ClusterCenters)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidArtifact, m.ModelFile, err)
	}
	if model.NumFeatures() != features {
		return nil, nil, fmt.Errorf("%w: %s: model has %d features, want %d", domain.ErrInvalidArtifact, m.ModelFile, model.NumFeatures(), features)
	}

	return scaler, model, nil
}

func (s *Store) readJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: cannot read %s: %w", domain.ErrInvalidArtifact, path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: invalid JSON %s: %w", domain.ErrInvalidArtifact, path, err)
	}
	return nil
}
