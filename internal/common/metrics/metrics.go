// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_messages_processed_total",
			Help: "Total number of messages processed, by detected intent",
		},
		[]string{"intent"},
	)

	ClassificationPathHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_classification_path_hits_total",
			Help: "Which classifier layer produced the result",
		},
		[]string{"path"},
	)

	Escalations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chatbot_escalations_total",
			Help: "Total number of conversations escalated to a human",
		},
	)

	FAQMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_faq_matches_total",
			Help: "FAQ matcher outcomes",
		},
		[]string{"outcome"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "chatbot_pipeline_duration_seconds",
			Help: "Duration of full message processing in seconds",
		},
	)

	PipelineErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatbot_pipeline_errors_total",
			Help: "Internal failures converted to the safe default result",
		},
		[]string{"stage"},
	)
)
