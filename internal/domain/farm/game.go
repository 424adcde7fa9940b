package farm

import (
	"time"

	"islandfarm/internal/domain/world"
)

// Game is one play session: the island, its field, the farmer and the clock
// that drives growth.
type Game struct {
	ID         string
	CreatedAt  time.Time
	AdvancedAt time.Time

	grid       *world.Grid
	field      *Field
	inventory  *Inventory
	player     *Player
	dispatcher *Dispatcher
	clock      world.Clock
	tuning     Tuning
}

type Options struct {
	Grid       *world.Grid
	Tuning     Tuning
	MaxCatchUp time.Duration
}

func NewGame(id string, opts Options, now time.Time) *Game {
	tuning := opts.Tuning
	if tuning == (Tuning{}) {
		tuning = DefaultTuning()
	}
	grid := opts.Grid
	if grid == nil {
		grid = world.Island(tuning.TileSize)
	}
	field := NewField(tuning.GrowthDuration, tuning.MaxWater)
	inventory := NewInventory(tuning.StartingSeeds)
	return &Game{
		ID:         id,
		CreatedAt:  now,
		AdvancedAt: now,
		grid:       grid,
		field:      field,
		inventory:  inventory,
		player:     NewPlayer(tuning.PlayerStart),
		dispatcher: NewDispatcher(field, inventory, grid, tuning),
		clock:      world.NewClock(world.ClockConfig{Step: tuning.TickStep, MaxCatchUp: opts.MaxCatchUp}),
		tuning:     tuning,
	}
}

func (g *Game) Grid() *world.Grid     { return g.grid }
func (g *Game) Field() *Field         { return g.field }
func (g *Game) Inventory() *Inventory { return g.inventory }
func (g *Game) Player() *Player       { return g.player }
func (g *Game) Tuning() Tuning        { return g.tuning }

// Step runs exactly one fixed tick.
func (g *Game) Step() []Advance {
	g.clock.Tick()
	return g.step()
}

func (g *Game) step() []Advance {
	step := g.clock.Step()
	advances := g.field.Tick(step)
	g.player.Tick(step)
	return advances
}

// AdvanceTo runs the ticks that fit between the last advance and now.
func (g *Game) AdvanceTo(now time.Time) []Advance {
	elapsed := now.Sub(g.AdvancedAt)
	if elapsed <= 0 {
		return nil
	}
	g.AdvancedAt = now
	n := g.clock.Advance(elapsed)
	var out []Advance
	for i := 0; i < n; i++ {
		out = append(out, g.step()...)
	}
	return out
}

// Act uses tool on target. A swing starts the tool pose, which holds the
// player in place until it runs out.
func (g *Game) Act(tool Tool, target world.Cell) Outcome {
	out := g.dispatcher.PerformAction(tool, target, g.player)
	if out.Swung {
		g.player.StartPose(tool, g.tuning.PoseDuration)
	}
	return out
}

func (g *Game) Move(dir world.Direction) bool {
	return g.player.Move(dir, g.grid, g.tuning.PlayerSpeed, g.tuning.PlayerSize)
}

type PlayerView struct {
	Position      world.Point
	Cell          world.Cell
	Facing        world.Direction
	PoseTool      Tool
	PoseRemaining time.Duration
}

type Snapshot struct {
	ID        string
	Ticks     int64
	Plots     []PlotView
	Inventory map[Item]int
	Player    PlayerView
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:        g.ID,
		Ticks:     g.clock.Ticks(),
		Plots:     g.field.Plots(),
		Inventory: g.inventory.Snapshot(),
		Player: PlayerView{
			Position:      g.player.Position,
			Cell:          g.grid.CellAt(g.player.Position),
			Facing:        g.player.Facing,
			PoseTool:      g.player.PoseTool,
			PoseRemaining: g.player.PoseRemaining(),
		},
	}
}
