package segment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"shopperSpectrum/pkg/metrics"
	"shopperSpectrum/pkg/trace"
)

type Service struct {
	artifacts *domain.Artifacts
}

func NewService(artifacts *domain.Artifacts) *Service {
	return &Service{artifacts: artifacts}
}

func (s *Service) Classify(ctx context.Context, rfm domain.RFMInput) (domain.Segment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Segment{}, fmt.Errorf("context error: %w", err)
	}
	if err := validateRFM(rfm); err != nil {
		return domain.Segment{}, err
	}

	seg, err := ClassifySegment(rfm, s.artifacts.Scaler, s.artifacts.Model, s.labels())
	if err != nil {
		var mie *domain.ModelInvocationError
		if errors.As(err, &mie) {
			metrics.ModelErrors.WithLabelValues(mie.Stage).Inc()
		}
		logger.Error("Failed to classify customer segment",
			"trace_id", trace.TraceIDFromContext(ctx),
			"error", err,
		)
		return domain.Segment{}, err
	}

	metrics.SegmentPredictions.WithLabelValues(seg.Label).Inc()
	logger.Debug("segment_classify",
		"trace_id", trace.TraceIDFromContext(ctx),
		"recency", rfm.Recency,
		"frequency", rfm.Frequency,
		"monetary", rfm.Monetary,
		"cluster", seg.ClusterIndex,
		"label", seg.Label,
	)

	return seg, nil
}

// Labels returns a copy of the cluster label map in use.
func (s *Service) Labels() domain.ClusterLabelMap {
	src := s.labels()
	out := make(domain.ClusterLabelMap, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (s *Service) labels() domain.ClusterLabelMap {
	if len(s.artifacts.Labels) == 0 {
		return domain.DefaultClusterLabels()
	}
	return s.artifacts.Labels
}

func validateRFM(rfm domain.RFMInput) error {
	switch {
	case rfm.Recency < 0:
		return fmt.Errorf("%w: recency must not be negative", domain.ErrInvalidRFM)
	case rfm.Frequency < 0:
		return fmt.Errorf("%w: frequency must not be negative", domain.ErrInvalidRFM)
	case rfm.Monetary < 0 || math.IsNaN(rfm.Monetary) || math.IsInf(rfm.Monetary, 0):
		return fmt.Errorf("%w: monetary must be a non-negative number", domain.ErrInvalidRFM)
	}
	return nil
}
