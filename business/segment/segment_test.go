//go:build !integration

package segment

import (
	"errors"
	"reflect"
	"shopperSpectrum/domain"
	"testing"
)

// zeroToHighValue maps an all-zero vector to cluster 1 and anything else to 0.
type zeroToHighValue struct{}

func (zeroToHighValue) Predict(x []float64) (int, error) {
	for _, v := range x {
		if v != 0 {
			return 0, nil
		}
	}
	return 1, nil
}

type identityScaler struct{}

func (identityScaler) Transform(x []float64) ([]float64, error) {
	return append([]float64(nil), x...), nil
}

type fixedModel int

func (m fixedModel) Predict([]float64) (int, error) { return int(m), nil }

type failingScaler struct{ err error }

func (s failingScaler) Transform([]float64) ([]float64, error) { return nil, s.err }

type failingModel struct{ err error }

func (m failingModel) Predict([]float64) (int, error) { return 0, m.err }

type recordingScaler struct{ got []float64 }

func (s *recordingScaler) Transform(x []float64) ([]float64, error) {
	s.got = append([]float64(nil), x...)
	return x, nil
}

func TestClassifySegment_NewCustomerIsHighValue(t *testing.T) {
	seg, err := ClassifySegment(domain.RFMInput{}, identityScaler{}, zeroToHighValue{}, domain.DefaultClusterLabels())
	if err != nil {
		t.Fatalf("ClassifySegment: %v", err)
	}
	want := domain.Segment{ClusterIndex: 1, Label: domain.LabelHighValue, Color: "green"}
	if seg != want {
		t.Fatalf("segment = %+v, want %+v", seg, want)
	}
}

func TestClassifySegment_UnmappedCluster(t *testing.T) {
	seg, err := ClassifySegment(domain.RFMInput{Recency: 3}, identityScaler{}, fixedModel(9), domain.DefaultClusterLabels())
	if err != nil {
		t.Fatalf("unmapped cluster must not fail: %v", err)
	}
	if seg.ClusterIndex != 9 || seg.Label != domain.LabelUnknown {
		t.Fatalf("segment = %+v", seg)
	}
}

func TestClassifySegment_FeatureOrder(t *testing.T) {
	rec := &recordingScaler{}
	_, err := ClassifySegment(domain.RFMInput{Recency: 12, Frequency: 3, Monetary: 99.5}, rec, fixedModel(0), nil)
	if err != nil {
		t.Fatalf("ClassifySegment: %v", err)
	}
	if !reflect.DeepEqual(rec.got, []float64{12, 3, 99.5}) {
		t.Fatalf("scaler received %v", rec.got)
	}
}

func TestClassifySegment_PropagatesModelErrors(t *testing.T) {
	cause := errors.New("shape mismatch")

	tests := []struct {
		name   string
		scaler domain.Scaler
		model  domain.ClusterModel
		stage  string
	}{
		{"scaler", failingScaler{err: cause}, fixedModel(0), "transform"},
		{"model", identityScaler{}, failingModel{err: cause}, "predict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClassifySegment(domain.RFMInput{}, tt.scaler, tt.model, domain.DefaultClusterLabels())
			var mie *domain.ModelInvocationError
			if !errors.As(err, &mie) {
				t.Fatalf("err = %v, want ModelInvocationError", err)
			}
			if mie.Stage != tt.stage {
				t.Fatalf("stage = %q, want %q", mie.Stage, tt.stage)
			}
			if !errors.Is(err, cause) {
				t.Fatalf("cause lost: %v", err)
			}
		})
	}
}

func TestClassifySegment_FittedModels(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{90, 4, 1500}, []float64{100, 5, 3000})
	if err != nil {
		t.Fatal(err)
	}
	model, err := NewKMeans([][]float64{
		{1.5, -0.6, -0.4}, // long ago, rarely, little
		{-0.6, 2.5, 3.0},  // recent, often, a lot
		{-0.4, 0.1, 0.0},  // average
		{0.3, -0.5, -0.3}, // occasional
	})
	if err != nil {
		t.Fatal(err)
	}
	labels := domain.DefaultClusterLabels()

	tests := []struct {
		rfm  domain.RFMInput
		want string
	}{
		{domain.RFMInput{Recency: 300, Frequency: 1, Monetary: 200}, domain.LabelAtRisk},
		{domain.RFMInput{Recency: 5, Frequency: 17, Monetary: 10500}, domain.LabelHighValue},
		{domain.RFMInput{Recency: 50, Frequency: 4, Monetary: 1500}, domain.LabelRegular},
		{domain.RFMInput{Recency: 120, Frequency: 1, Monetary: 600}, domain.LabelOccasional},
	}
	for _, tt := range tests {
		got, err := ClassifySegment(tt.rfm, scaler, model, labels)
		if err != nil {
			t.Fatalf("ClassifySegment(%+v): %v", tt.rfm, err)
		}
		if got.Label != tt.want {
			t.Errorf("ClassifySegment(%+v) = %q, want %q", tt.rfm, got.Label, tt.want)
		}

		again, _ := ClassifySegment(tt.rfm, scaler, model, labels)
		if again != got {
			t.Errorf("ClassifySegment(%+v) not deterministic", tt.rfm)
		}
	}
}

func TestClassifySegment_TotalOverDomain(t *testing.T) {
	scaler, _ := NewStandardScaler([]float64{90, 4, 1500}, []float64{100, 5, 3000})
	model, _ := NewKMeans([][]float64{{0, 0, 0}, {1, 1, 1}, {-1, 0, 1}, {2, -2, 0}})
	labels := domain.DefaultClusterLabels()

	for r := 0; r <= 400; r += 37 {
		for f := 0; f <= 200; f += 23 {
			for _, m := range []float64{0, 0.01, 99.99, 1e4, 1e9} {
				seg, err := ClassifySegment(domain.RFMInput{Recency: r, Frequency: f, Monetary: m}, scaler, model, labels)
				if err != nil {
					t.Fatalf("(%d,%d,%v): %v", r, f, m, err)
				}
				if seg.Label == "" {
					t.Fatalf("(%d,%d,%v): empty label", r, f, m)
				}
			}
		}
	}
}
