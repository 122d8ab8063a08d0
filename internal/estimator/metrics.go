package estimator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceHTTP = "http"
	SourceNATS = "nats"
	SourceCLI  = "cli"

	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
)

var (
	estimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landbos_estimates_total",
		Help: "Cost estimates evaluated, by request source and outcome.",
	}, []string{"source", "outcome"})

	estimateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "landbos_estimate_duration_seconds",
		Help:    "Time to evaluate an estimate, with or without its gradient.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	}, []string{"kind"})

	bosPerKW = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "landbos_bos_usd_per_kw",
		Help:    "Balance-of-station cost per kW of the estimated farms.",
		Buckets: prometheus.LinearBuckets(100, 100, 15),
	})

	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landbos_events_published_total",
		Help: "Events published to hermes, by outcome.",
	}, []string{"outcome"})
)
