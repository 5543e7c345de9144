//go:build !integration

package segment

import (
	"context"
	"errors"
	"math"
	"shopperSpectrum/domain"
	"testing"
)

func newTestService(model domain.ClusterModel, labels domain.ClusterLabelMap) *Service {
	return NewService(&domain.Artifacts{
		Scaler: identityScaler{},
		Model:  model,
		Labels: labels,
	})
}

func TestService_Classify(t *testing.T) {
	svc := newTestService(zeroToHighValue{}, nil)

	seg, err := svc.Classify(context.Background(), domain.RFMInput{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if seg.Label != domain.LabelHighValue {
		t.Fatalf("label = %q", seg.Label)
	}
}

func TestService_CustomLabels(t *testing.T) {
	svc := newTestService(fixedModel(2), domain.ClusterLabelMap{2: "Loyal"})

	seg, err := svc.Classify(context.Background(), domain.RFMInput{Recency: 1})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if seg.Label != "Loyal" || seg.Color != "gray" {
		t.Fatalf("segment = %+v", seg)
	}

	labels := svc.Labels()
	labels[2] = "mutated"
	if svc.Labels()[2] != "Loyal" {
		t.Fatalf("Labels() exposed internal map")
	}
}

func TestService_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(fixedModel(0), nil)

	inputs := []domain.RFMInput{
		{Recency: -1},
		{Frequency: -1},
		{Monetary: -0.5},
		{Monetary: math.NaN()},
		{Monetary: math.Inf(1)},
	}
	for _, in := range inputs {
		if _, err := svc.Classify(context.Background(), in); !errors.Is(err, domain.ErrInvalidRFM) {
			t.Errorf("Classify(%+v) err = %v, want ErrInvalidRFM", in, err)
		}
	}
}

func TestService_ModelFailure(t *testing.T) {
	svc := newTestService(failingModel{err: errors.New("bad shape")}, nil)

	_, err := svc.Classify(context.Background(), domain.RFMInput{})
	var mie *domain.ModelInvocationError
	if !errors.As(err, &mie) || mie.Stage != "predict" {
		t.Fatalf("err = %v, want predict ModelInvocationError", err)
	}
}

func TestService_CancelledContext(t *testing.T) {
	svc := newTestService(fixedModel(0), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Classify(ctx, domain.RFMInput{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
