package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of a single similarity lookup, not-found included
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of similarity-matrix recommendation lookups",
		Buckets: prometheus.DefBuckets,
	})

	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation lookups",
	})

	RecommendNotFound = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_not_found_total",
		Help: "Recommendation lookups for product codes absent from the catalog",
	})

	SegmentPredictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segment_predictions_total",
			Help: "Customer segment predictions by resolved label",
		},
		[]string{"label"},
	)

	ModelErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segment_model_errors_total",
			Help: "Scaler or cluster model invocation failures by stage",
		},
		[]string{"stage"},
	)

	once sync.Once
)

func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			RecommendLatency,
			RecommendRequests,
			RecommendNotFound,
			SegmentPredictions,
			ModelErrors,
		)
	})
}
