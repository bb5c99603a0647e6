package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_classifications_total",
		Help: "Messages classified, by intent category.",
	}, []string{"category"})

	PipelineFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_pipeline_failures_total",
		Help: "Pipeline runs that surfaced an error to the user, by stage.",
	}, []string{"stage"})

	ExtractDegrades = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_extract_degrades_total",
		Help: "Product query extractions that degraded to an empty query.",
	})

	ScriptDegrades = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_script_degrades_total",
		Help: "Script runner calls that degraded to the sentinel error text.",
	})
)
