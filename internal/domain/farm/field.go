package farm

import (
	"sort"
	"time"

	"islandfarm/internal/domain/world"
)

// Field owns every plot on the island. Callers never hold plot pointers.
type Field struct {
	growth   time.Duration
	maxWater int
	plots    map[world.Cell]*Plot
}

func NewField(growth time.Duration, maxWater int) *Field {
	if growth <= 0 {
		growth = DefaultGrowthDuration
	}
	if maxWater <= 0 {
		maxWater = DefaultMaxWater
	}
	return &Field{growth: growth, maxWater: maxWater, plots: map[world.Cell]*Plot{}}
}

// Till breaks ground at c. Tilling a cell that already has a plot does nothing.
func (f *Field) Till(c world.Cell) {
	if _, ok := f.plots[c]; ok {
		return
	}
	f.plots[c] = &Plot{Stage: StageTilled}
}

func (f *Field) PlantSeed(c world.Cell) bool {
	p, ok := f.plots[c]
	if !ok || p.Stage != StageTilled {
		return false
	}
	p.Stage = StageSeeded
	p.TimeInStage = 0
	return true
}

// Water adds one charge, capped at the field's maximum. Ready plots take no water.
func (f *Field) Water(c world.Cell) {
	p, ok := f.plots[c]
	if !ok || p.Stage == StageReady {
		return
	}
	p.Water = min(p.Water+1, f.maxWater)
}

func (f *Field) Harvest(c world.Cell) bool {
	p, ok := f.plots[c]
	if !ok || p.Stage != StageReady {
		return false
	}
	delete(f.plots, c)
	return true
}

// Tick moves every watered, growing plot forward by delta. A plot advances at
// most one stage per tick; each advance spends one charge.
func (f *Field) Tick(delta time.Duration) []Advance {
	if delta <= 0 {
		return nil
	}
	var out []Advance
	for c, p := range f.plots {
		if p.Water <= 0 || !p.Stage.Grows() {
			continue
		}
		p.TimeInStage += delta
		if p.TimeInStage < f.growth {
			continue
		}
		next, ok := p.Stage.Next()
		if !ok {
			continue
		}
		out = append(out, Advance{Cell: c, From: p.Stage, To: next})
		p.Stage = next
		p.TimeInStage = 0
		p.Water = max(p.Water-1, 0)
	}
	sort.Slice(out, func(i, j int) bool { return cellLess(out[i].Cell, out[j].Cell) })
	return out
}

func (f *Field) Plot(c world.Cell) (PlotView, bool) {
	p, ok := f.plots[c]
	if !ok {
		return PlotView{}, false
	}
	return PlotView{Cell: c, Stage: p.Stage, Water: p.Water, TimeInStage: p.TimeInStage}, true
}

func (f *Field) Has(c world.Cell) bool {
	_, ok := f.plots[c]
	return ok
}

func (f *Field) Len() int { return len(f.plots) }

// Plots lists every plot in row-major order.
func (f *Field) Plots() []PlotView {
	out := make([]PlotView, 0, len(f.plots))
	for c, p := range f.plots {
		out = append(out, PlotView{Cell: c, Stage: p.Stage, Water: p.Water, TimeInStage: p.TimeInStage})
	}
	sort.Slice(out, func(i, j int) bool { return cellLess(out[i].Cell, out[j].Cell) })
	return out
}

func cellLess(a, b world.Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
