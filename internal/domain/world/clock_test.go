package world

import (
	"testing"
	"time"
)

func TestClockAdvanceCarriesRemainder(t *testing.T) {
	clock := NewClock(ClockConfig{Step: 16 * time.Millisecond})

	if n := clock.Advance(40 * time.Millisecond); n != 2 {
		t.Fatalf("expected 2 ticks for 40ms, got %d", n)
	}
	if n := clock.Advance(10 * time.Millisecond); n != 1 {
		t.Fatalf("expected carried 8ms + 10ms to yield 1 tick, got %d", n)
	}
	if clock.Ticks() != 3 {
		t.Fatalf("expected 3 ticks total, got %d", clock.Ticks())
	}
}

func TestClockAdvanceCapsCatchUp(t *testing.T) {
	clock := NewClock(ClockConfig{Step: 10 * time.Millisecond, MaxCatchUp: 100 * time.Millisecond})

	if n := clock.Advance(time.Hour); n != 10 {
		t.Fatalf("expected catch-up capped at 10 ticks, got %d", n)
	}
	if n := clock.Advance(5 * time.Millisecond); n != 0 {
		t.Fatalf("expected no tick for 5ms after capped advance, got %d", n)
	}
}

func TestClockIgnoresNonPositiveElapsed(t *testing.T) {
	clock := DefaultClock()
	if n := clock.Advance(-time.Second); n != 0 {
		t.Fatalf("expected 0 ticks for negative elapsed, got %d", n)
	}
	if clock.Step() != DefaultTickStep {
		t.Fatalf("expected default step %s, got %s", DefaultTickStep, clock.Step())
	}
}
