package farm

import (
	"time"

	"islandfarm/internal/domain/world"
)

type Plot struct {
	Stage       Stage
	Water       int
	TimeInStage time.Duration
}

// PlotView is a read-only copy of a plot and its cell.
type PlotView struct {
	Cell        world.Cell
	Stage       Stage
	Water       int
	TimeInStage time.Duration
}

// Advance records one stage transition produced by a tick.
type Advance struct {
	Cell world.Cell
	From Stage
	To   Stage
}
