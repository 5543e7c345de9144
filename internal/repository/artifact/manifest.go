package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const manifestFile = "manifest.yaml"

// Manifest names the files of an artifact directory. Every field is optional.
type Manifest struct {
	SimilarityFile string         `yaml:"similarity_file"`
	ProductsFile   string         `yaml:"products_file"`
	NamesFile      string         `yaml:"names_file"`
	ScalerFile     string         `yaml:"scaler_file"`
	ModelFile      string         `yaml:"model_file"`
	Labels         map[int]string `yaml:"labels"`
}

func defaultManifest() Manifest {
	return Manifest{
		SimilarityFile: "similarity_matrix.npy",
		ProductsFile:   "product_names.json",
		NamesFile:      "product_mapping.json",
		ScalerFile:     "scaler.json",
		ModelFile:      "rfm_model.json",
	}
}

// loadManifest reads dir/manifest.yaml. A missing manifest means defaults.
func loadManifest(dir string) (Manifest, error) {
	m := defaultManifest()

	path := filepath.Join(dir, manifestFile)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("cannot read manifest %s: %w", path, err)
	}

	var override Manifest
	if err := yaml.Unmarshal(b, &override); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest YAML %s: %w", path, err)
	}

	if override.SimilarityFile != "" {
		m.SimilarityFile = override.SimilarityFile
	}
	if override.ProductsFile != "" {
		m.ProductsFile = override.ProductsFile
	}
	if override.NamesFile != "" {
		m.NamesFile = override.NamesFile
	}
	if override.ScalerFile != "" {
		m.ScalerFile = override.ScalerFile
	}
	if override.ModelFile != "" {
		m.ModelFile = override.ModelFile
	}
	m.Labels = override.Labels

	return m, nil
}
