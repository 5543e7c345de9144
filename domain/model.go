package domain

// Scaler is a fitted, deterministic feature transform.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// ClusterModel assigns a normalized feature vector to one cluster.
type ClusterModel interface {
	Predict(x []float64) (int, error)
}
