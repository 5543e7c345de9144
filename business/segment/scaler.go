package segment

import "fmt"

// StandardScaler applies a fitted (x - mean) / scale per feature.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler copies the fitted parameters. A missing mean means no
// centering; a missing scale means no scaling. A zero scale is treated as 1.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	switch {
	case len(mean) == 0 && len(scale) == 0:
		return nil, fmt.Errorf("scaler has no fitted parameters")
	case len(mean) == 0:
		mean = make([]float64, len(scale))
	case len(scale) == 0:
		scale = make([]float64, len(mean))
	case len(mean) != len(scale):
		return nil, fmt.Errorf("scaler mean has %d features, scale has %d", len(mean), len(scale))
	}

	s := &StandardScaler{
		mean:  make([]float64, len(mean)),
		scale: make([]float64, len(scale)),
	}
	copy(s.mean, mean)
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

func (s *StandardScaler) NumFeatures() int {
	return len(s.mean)
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != len(s.mean) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.mean), len(x))
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}
