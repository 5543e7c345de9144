package recommend

import (
	"context"
	"errors"
	"fmt"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"shopperSpectrum/pkg/metrics"
	"shopperSpectrum/pkg/trace"
	"time"
)

type Service struct {
	artifacts *domain.Artifacts
	topK      int
}

func NewService(artifacts *domain.Artifacts, topK int) *Service {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Service{
		artifacts: artifacts,
		topK:      topK,
	}
}

// Recommend looks up productCode in the loaded artifacts. k <= 0 uses the
// configured default.
func (s *Service) Recommend(ctx context.Context, productCode string, k int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if k <= 0 {
		k = s.topK
	}

	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendRequests.Inc()

	a := s.artifacts
	recs, err := Recommend(productCode, a.Catalog, a.Similarity, a.Names, k)
	if errors.Is(err, domain.ErrProductNotFound) {
		metrics.RecommendNotFound.Inc()
		logger.Debug("recommend_not_found",
			"trace_id", trace.TraceIDFromContext(ctx),
			"product", productCode,
		)
		return nil, err
	}
	if err != nil {
		logger.Error("Failed to rank similar products", "product", productCode, "error", err)
		return nil, err
	}

	logger.Debug("recommend",
		"trace_id", trace.TraceIDFromContext(ctx),
		"product", productCode,
		"k", k,
		"returned", len(recs),
	)

	return recs, nil
}
