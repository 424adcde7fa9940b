package inmemory

import (
	"testing"

	"islandfarm/internal/domain/farm"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(farm.ToolTill, farm.ReasonNone)
	r.RecordSuccess(farm.ToolHarvest, farm.ReasonOutOfRange)
	r.RecordSuccess(farm.ToolTill, farm.ReasonAlreadyTilled)
	r.RecordConflict()
	r.RecordFailure()

	s := r.Snapshot()
	if s.ActionTotal != 5 {
		t.Fatalf("expected total 5, got %d", s.ActionTotal)
	}
	if s.ActionSuccess != 3 {
		t.Fatalf("expected success 3, got %d", s.ActionSuccess)
	}
	if s.ActionConflict != 1 || s.ActionFailure != 1 {
		t.Fatalf("expected conflict 1 and failure 1, got %d/%d", s.ActionConflict, s.ActionFailure)
	}
	if s.ByTool["till"] != 2 || s.ByTool["harvest"] != 1 {
		t.Fatalf("unexpected by_tool %v", s.ByTool)
	}
	if s.ByReason["ok"] != 1 || s.ByReason["out_of_range"] != 1 || s.ByReason["already_tilled"] != 1 {
		t.Fatalf("unexpected by_reason %v", s.ByReason)
	}
}

func TestRecorderSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess(farm.ToolWater, farm.ReasonNone)
	s := r.Snapshot()
	s.ByTool["water"] = 99
	if got := r.Snapshot().ByTool["water"]; got != 1 {
		t.Fatalf("expected recorder untouched by snapshot edits, got %d", got)
	}
}
