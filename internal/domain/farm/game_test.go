package farm

import (
	"testing"
	"time"

	"islandfarm/internal/domain/world"
)

var gameStart = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestNewGameUsesDefaults(t *testing.T) {
	g := NewGame("g-1", Options{}, gameStart)
	if g.Grid().Width() != 25 || g.Grid().Height() != 18 {
		t.Fatalf("expected default island, got %dx%d", g.Grid().Width(), g.Grid().Height())
	}
	if got := g.Inventory().Count(ItemSeeds); got != 10 {
		t.Fatalf("expected 10 starting seeds, got %d", got)
	}
	if got := g.Inventory().Count(ItemCrops); got != 0 {
		t.Fatalf("expected 0 starting crops, got %d", got)
	}
	if g.Player().Position != (world.Point{X: 400, Y: 300}) {
		t.Fatalf("unexpected start position %+v", g.Player().Position)
	}
	snap := g.Snapshot()
	if snap.Player.Cell != (world.Cell{X: 12, Y: 9}) || snap.Ticks != 0 || len(snap.Plots) != 0 {
		t.Fatalf("unexpected initial snapshot %+v", snap)
	}
}

func TestGameFullHarvestLoop(t *testing.T) {
	g := NewGame("g-1", Options{}, gameStart)
	target := world.Cell{X: 12, Y: 10}

	for _, tool := range []Tool{ToolTill, ToolPlant, ToolWater} {
		if out := g.Act(tool, target); !out.Changed {
			t.Fatalf("%s: expected change, got %+v", tool, out)
		}
	}
	for i := 0; i < 500; i++ {
		g.Step()
	}
	if p := mustPlot(t, g.Field(), target); p.Stage != StageGrowing {
		t.Fatalf("expected growing after 8s, got %+v", p)
	}
	g.Act(ToolWater, target)
	var advances []Advance
	for i := 0; i < 500; i++ {
		advances = append(advances, g.Step()...)
	}
	if len(advances) != 1 || advances[0].To != StageReady {
		t.Fatalf("expected a single advance to ready, got %+v", advances)
	}
	if out := g.Act(ToolHarvest, target); !out.Changed {
		t.Fatalf("expected harvest, got %+v", out)
	}
	inv := g.Inventory()
	if inv.Count(ItemSeeds) != 11 || inv.Count(ItemCrops) != 1 {
		t.Fatalf("expected 11 seeds and 1 crop, got %v", inv.Snapshot())
	}
	if g.Snapshot().Ticks != 1000 {
		t.Fatalf("expected 1000 ticks, got %d", g.Snapshot().Ticks)
	}
}

func TestGameAdvanceToRunsFixedTicks(t *testing.T) {
	g := NewGame("g-1", Options{MaxCatchUp: 10 * time.Second}, gameStart)

	g.AdvanceTo(gameStart.Add(100 * time.Millisecond))
	if got := g.Snapshot().Ticks; got != 6 {
		t.Fatalf("expected 6 ticks for 100ms, got %d", got)
	}
	g.AdvanceTo(gameStart.Add(50 * time.Millisecond))
	if got := g.Snapshot().Ticks; got != 6 {
		t.Fatalf("expected going back in time to be ignored, got %d", got)
	}
	g.AdvanceTo(gameStart.Add(time.Hour))
	if got := g.Snapshot().Ticks; got != 6+625 {
		t.Fatalf("expected catch-up capped at 10s, got %d", got)
	}
	if !g.AdvancedAt.Equal(gameStart.Add(time.Hour)) {
		t.Fatalf("expected AdvancedAt moved to now, got %s", g.AdvancedAt)
	}
}

func TestGameAdvanceToGrowsWateredCrop(t *testing.T) {
	g := NewGame("g-1", Options{}, gameStart)
	target := world.Cell{X: 12, Y: 9}
	g.Act(ToolTill, target)
	g.Act(ToolPlant, target)
	g.Act(ToolWater, target)

	advances := g.AdvanceTo(gameStart.Add(8 * time.Second))
	if len(advances) != 1 || advances[0].From != StageSeeded || advances[0].To != StageGrowing {
		t.Fatalf("expected seeded->growing, got %+v", advances)
	}
}

func TestGamePoseBlocksMovement(t *testing.T) {
	g := NewGame("g-1", Options{}, gameStart)
	start := g.Player().Position

	g.Act(ToolTill, world.Cell{X: 12, Y: 10})
	if !g.Player().Posing() || g.Player().PoseTool != ToolTill {
		t.Fatalf("expected till pose")
	}
	if g.Move(world.DirLeft) {
		t.Fatalf("expected movement blocked during pose")
	}
	if g.Player().Position != start || g.Player().Facing != world.DirDown {
		t.Fatalf("expected player untouched during pose, got %+v", g.Player())
	}
	for i := 0; i < 32; i++ {
		g.Step()
	}
	if g.Player().Posing() {
		t.Fatalf("expected pose over after 512ms, remaining %s", g.Player().PoseRemaining())
	}
	if !g.Move(world.DirLeft) {
		t.Fatalf("expected movement after pose")
	}
	if g.Player().Position.X != start.X-DefaultPlayerSpeed {
		t.Fatalf("expected x=%v, got %v", start.X-DefaultPlayerSpeed, g.Player().Position.X)
	}
}

func TestGamePlantWithoutSeedsStrikesNoPose(t *testing.T) {
	tuning := DefaultTuning()
	tuning.StartingSeeds = 0
	g := NewGame("g-1", Options{Tuning: tuning}, gameStart)
	target := world.Cell{X: 12, Y: 10}
	g.Act(ToolTill, target)
	for i := 0; i < 32; i++ {
		g.Step()
	}

	out := g.Act(ToolPlant, target)
	if out.Swung || g.Player().Posing() {
		t.Fatalf("expected no pose when out of seeds, got %+v", out)
	}
}

func TestGameWestEdgeCannotFarmOffTheMap(t *testing.T) {
	g := NewGame("edge", Options{}, gameStart)
	for i := 0; i < 1000; i++ {
		if !g.Move(world.DirLeft) {
			break
		}
	}
	if cell := g.Snapshot().Player.Cell; cell.X != 0 {
		t.Fatalf("expected player at the west edge, got %+v", cell)
	}

	out := g.Act(ToolTill, world.Cell{X: -3, Y: g.Snapshot().Player.Cell.Y})
	if out.Changed || out.Reason != ReasonOutOfBounds {
		t.Fatalf("expected out of bounds rejection, got %+v", out)
	}
	if plots := g.Snapshot().Plots; len(plots) != 0 {
		t.Fatalf("expected no plots, got %+v", plots)
	}
	if g.Player().Posing() {
		t.Fatalf("rejected action must not start a pose")
	}
}

func TestPlayerMoveRules(t *testing.T) {
	grid := world.Island(world.DefaultTileSize)

	p := NewPlayer(world.Point{X: 224, Y: 224})
	if p.Move(world.DirUp, grid, DefaultPlayerSpeed, DefaultPlayerSize) {
		t.Fatalf("expected move inside the pond to be blocked")
	}
	if p.Facing != world.DirUp || p.Position != (world.Point{X: 224, Y: 224}) {
		t.Fatalf("expected blocked move to turn but not move, got %+v", p)
	}

	p = NewPlayer(world.Point{X: 0, Y: 128})
	if !p.Move(world.DirLeft, grid, DefaultPlayerSpeed, DefaultPlayerSize) {
		t.Fatalf("expected clamped move at the map edge to succeed")
	}
	if p.Position.X != 0 || p.Facing != world.DirLeft {
		t.Fatalf("expected x clamped to 0, got %+v", p)
	}

	p = NewPlayer(world.Point{X: 400, Y: 300})
	if p.Move(world.Direction("north"), grid, DefaultPlayerSpeed, DefaultPlayerSize) {
		t.Fatalf("expected unknown direction to be ignored")
	}
}

func TestToolUsedEventCarriesInventory(t *testing.T) {
	g := NewGame("g-1", Options{}, gameStart)
	out := g.Act(ToolTill, world.Cell{X: 12, Y: 10})
	ev := ToolUsedEvent(out, g.Inventory().Snapshot(), gameStart)
	if ev.Type != EventToolUsed || ev.Payload["tool"] != "till" || ev.Payload["changed"] != true {
		t.Fatalf("unexpected event %+v", ev)
	}
	inv, ok := ev.Payload["inventory_after"].(map[string]any)
	if !ok || inv["seeds"] != 10 {
		t.Fatalf("expected inventory_after with 10 seeds, got %+v", ev.Payload["inventory_after"])
	}
	if got := CropAdvancedEvents(nil, gameStart); got != nil {
		t.Fatalf("expected no events for no advances, got %+v", got)
	}
}

func TestParseToolAcceptsNamesAndHotkeys(t *testing.T) {
	for raw, want := range map[string]Tool{"till": ToolTill, " Plant ": ToolPlant, "3": ToolWater, "4": ToolHarvest} {
		got, ok := ParseTool(raw)
		if !ok || got != want {
			t.Fatalf("ParseTool(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParseTool("5"); ok {
		t.Fatalf("expected unknown hotkey to fail")
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("expected defaults valid, got %v", err)
	}
	bad := DefaultTuning()
	bad.MaxWater = 0
	if err := bad.Validate(); err != ErrInvalidTuning {
		t.Fatalf("expected ErrInvalidTuning, got %v", err)
	}
}
