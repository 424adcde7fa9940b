package ports

import "islandfarm/internal/domain/farm"

type ActionMetrics interface {
	RecordSuccess(tool farm.Tool, reason farm.Reason)
	RecordConflict()
	RecordFailure()
}

// MultiMetrics fans every record out to each recorder in order.
type MultiMetrics []ActionMetrics

func (m MultiMetrics) RecordSuccess(tool farm.Tool, reason farm.Reason) {
	for _, r := range m {
		r.RecordSuccess(tool, reason)
	}
}

func (m MultiMetrics) RecordConflict() {
	for _, r := range m {
		r.RecordConflict()
	}
}

func (m MultiMetrics) RecordFailure() {
	for _, r := range m {
		r.RecordFailure()
	}
}
