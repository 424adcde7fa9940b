package farm

import "islandfarm/internal/domain/world"

type Reason string

const (
	ReasonNone          Reason = ""
	ReasonOutOfBounds   Reason = "out_of_bounds"
	ReasonOutOfRange    Reason = "out_of_range"
	ReasonNoSeeds       Reason = "no_seeds"
	ReasonAlreadyTilled Reason = "already_tilled"
	ReasonNotTilled     Reason = "not_tilled"
	ReasonNoPlot        Reason = "no_plot"
	ReasonPlotReady     Reason = "plot_ready"
	ReasonWaterFull     Reason = "water_full"
	ReasonNotReady      Reason = "not_ready"
	ReasonUnknownTool   Reason = "unknown_tool"
)

// Outcome describes what a tool action did. It is informational: the state
// changes have already happened (or not) by the time it is returned.
type Outcome struct {
	Tool    Tool
	Target  world.Cell
	InRange bool
	// Swung is true when the player went through the tool motion.
	Swung   bool
	Changed bool
	Facing  world.Direction
	Reason  Reason
}

// Dispatcher applies tool actions to the field and inventory.
type Dispatcher struct {
	field     *Field
	inventory *Inventory
	grid      *world.Grid
	tuning    Tuning
}

func NewDispatcher(field *Field, inventory *Inventory, grid *world.Grid, tuning Tuning) *Dispatcher {
	return &Dispatcher{field: field, inventory: inventory, grid: grid, tuning: tuning}
}

// PerformAction checks that target is on the island and in range from the
// player's position, turns the player toward target and applies tool. Every
// rejection is a silent no-op.
func (d *Dispatcher) PerformAction(tool Tool, target world.Cell, player *Player) Outcome {
	out := Outcome{Tool: tool, Target: target, Facing: player.Facing}
	if !d.grid.InBounds(target) {
		out.Reason = ReasonOutOfBounds
		return out
	}
	if !d.grid.InRange(target, player.Position, d.tuning.ActionRange) {
		out.Reason = ReasonOutOfRange
		return out
	}
	out.InRange = true

	player.Facing = world.Facing(d.grid.CellAt(player.Position), target)
	out.Facing = player.Facing

	switch tool {
	case ToolTill:
		out.Swung = true
		if d.field.Has(target) {
			out.Reason = ReasonAlreadyTilled
			return out
		}
		d.field.Till(target)
		out.Changed = true
	case ToolPlant:
		if !d.inventory.Has(ItemSeeds, 1) {
			out.Reason = ReasonNoSeeds
			return out
		}
		out.Swung = true
		if !d.field.PlantSeed(target) {
			out.Reason = ReasonNotTilled
			return out
		}
		d.inventory.Consume(ItemSeeds, 1)
		out.Changed = true
	case ToolWater:
		out.Swung = true
		before, ok := d.field.Plot(target)
		switch {
		case !ok:
			out.Reason = ReasonNoPlot
		case before.Stage == StageReady:
			out.Reason = ReasonPlotReady
		case before.Water >= d.tuning.MaxWater:
			out.Reason = ReasonWaterFull
		}
		d.field.Water(target)
		out.Changed = out.Reason == ReasonNone
	case ToolHarvest:
		out.Swung = true
		if !d.field.Harvest(target) {
			out.Reason = ReasonNotReady
			return out
		}
		d.inventory.Add(ItemCrops, d.tuning.HarvestCrops)
		d.inventory.Add(ItemSeeds, d.tuning.HarvestSeeds)
		out.Changed = true
	default:
		out.Reason = ReasonUnknownTool
	}
	return out
}
