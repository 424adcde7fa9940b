package prom

import (
	"islandfarm/internal/domain/farm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "islandfarm"

	LabelTool   = "tool"
	LabelReason = "reason"
	LabelResult = "result"
)

// Recorder exports tool usage as prometheus counters.
type Recorder struct {
	toolUses *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// NewRecorder registers its collectors with reg. A nil reg uses the default
// registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		toolUses: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_uses_total",
				Help:      "Tool actions applied to a game, by tool and outcome reason.",
			},
			[]string{LabelTool, LabelReason},
		),
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "action_requests_total",
				Help:      "Action requests by result.",
			},
			[]string{LabelResult},
		),
	}
}

func (r *Recorder) RecordSuccess(tool farm.Tool, reason farm.Reason) {
	label := string(reason)
	if reason == farm.ReasonNone {
		label = "ok"
	}
	r.toolUses.WithLabelValues(string(tool), label).Inc()
	r.requests.WithLabelValues("success").Inc()
}

func (r *Recorder) RecordConflict() {
	r.requests.WithLabelValues("conflict").Inc()
}

func (r *Recorder) RecordFailure() {
	r.requests.WithLabelValues("failure").Inc()
}
