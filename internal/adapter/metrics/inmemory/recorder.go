package inmemory

import (
	"sync"

	"islandfarm/internal/domain/farm"
)

const okReason = "ok"

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionConflict uint64            `json:"action_conflict"`
	ActionFailure  uint64            `json:"action_failure"`
	ByTool         map[string]uint64 `json:"by_tool"`
	ByReason       map[string]uint64 `json:"by_reason"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	conflict uint64
	failure  uint64
	byTool   map[string]uint64
	byReason map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTool:   map[string]uint64{},
		byReason: map[string]uint64{},
	}
}

// RecordSuccess counts a tool use that reached the game. Uses the game
// refused are successes too; they are told apart by reason.
func (r *Recorder) RecordSuccess(tool farm.Tool, reason farm.Reason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byTool[string(tool)]++
	r.byReason[reasonLabel(reason)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:  r.success,
		ActionConflict: r.conflict,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.conflict + r.failure,
		ByTool:         make(map[string]uint64, len(r.byTool)),
		ByReason:       make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byTool {
		out.ByTool[k] = v
	}
	for k, v := range r.byReason {
		out.ByReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func reasonLabel(reason farm.Reason) string {
	if reason == farm.ReasonNone {
		return okReason
	}
	return string(reason)
}
