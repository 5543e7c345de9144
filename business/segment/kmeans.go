package segment

import "fmt"

// KMeans is a fitted nearest-centroid model.
type KMeans struct {
	centers [][]float64
}

func NewKMeans(centers [][]float64) (*KMeans, error) {
	if len(centers) == 0 {
		return nil, fmt.Errorf("kmeans model has no cluster centers")
	}
	dim := len(centers[0])
	if dim == 0 {
		return nil, fmt.Errorf("kmeans cluster centers are empty")
	}

	m := &KMeans{centers: make([][]float64, len(centers))}
	for i, c := range centers {
		if len(c) != dim {
			return nil, fmt.Errorf("kmeans center %d has %d features, want %d", i, len(c), dim)
		}
		m.centers[i] = append([]float64(nil), c...)
	}
	return m, nil
}

func (m *KMeans) NumClusters() int {
	return len(m.centers)
}

func (m *KMeans) NumFeatures() int {
	return len(m.centers[0])
}

// Predict returns the index of the closest center by squared Euclidean
// distance. Equal distances resolve to the lower index.
func (m *KMeans) Predict(x []float64) (int, error) {
	if len(x) != m.NumFeatures() {
		return 0, fmt.Errorf("kmeans expects %d features, got %d", m.NumFeatures(), len(x))
	}

	best := 0
	bestDist := squaredDistance(m.centers[0], x)
	for i := 1; i < len(m.centers); i++ {
		if d := squaredDistance(m.centers[i], x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
