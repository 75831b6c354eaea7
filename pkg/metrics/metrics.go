// Package metrics exposes the orchestrator's Prometheus collectors. They are
// registered on the default registry and served by the API's /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PassesStarted counts pipeline passes started, per session.
	PassesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryoflow",
		Name:      "pipeline_passes_started_total",
		Help:      "Number of pipeline passes started.",
	}, []string{"session_id"})

	// StagesSubmitted counts cluster submissions per stage.
	StagesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryoflow",
		Name:      "stages_submitted_total",
		Help:      "Number of stage jobs submitted to the cluster.",
	}, []string{"stage"})

	// StageFailures counts terminal stage failures per stage.
	StageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryoflow",
		Name:      "stage_failures_total",
		Help:      "Number of stage jobs that finished in a failed state.",
	}, []string{"stage"})

	// WatchedFiles tracks the cumulative known-file count per session.
	WatchedFiles = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cryoflow",
		Name:      "watched_files",
		Help:      "Cumulative stable files discovered in the watch directory.",
	}, []string{"session_id"})

	// ActiveSessions tracks sessions registered in the live registry.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cryoflow",
		Name:      "active_sessions",
		Help:      "Sessions currently registered with the orchestrator.",
	})
)
