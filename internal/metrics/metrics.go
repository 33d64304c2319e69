package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sapience_uploads_total",
		Help: "Upload requests by outcome.",
	}, []string{"outcome"})

	uploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sapience_upload_duration_seconds",
		Help:    "End-to-end duration of successful uploads.",
		Buckets: prometheus.DefBuckets,
	})

	uploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sapience_upload_bytes_total",
		Help: "Total bytes accepted for upload.",
	})
)

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}

// ObserveUpload records the outcome of one upload request.
func ObserveUpload(outcome string, sizeBytes int64, seconds float64) {
	uploadsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeAccepted {
		uploadDuration.Observe(seconds)
		uploadBytes.Add(float64(sizeBytes))
	}
}
