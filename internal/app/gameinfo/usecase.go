package gameinfo

import (
	"context"

	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"
)

type Request struct{}

type Response struct {
	Rules   Rules           `json:"rules"`
	Toolbar []farm.ToolSlot `json:"toolbar"`
	Map     Map             `json:"map"`
}

type Rules struct {
	TickMS           int64   `json:"tick_ms"`
	GrowthDurationMS int64   `json:"growth_duration_ms"`
	MaxWater         int     `json:"max_water"`
	ActionRange      float64 `json:"action_range"`
	StartingSeeds    int     `json:"starting_seeds"`
	HarvestCrops     int     `json:"harvest_crops"`
	HarvestSeeds     int     `json:"harvest_seeds"`
	PoseDurationMS   int64   `json:"pose_duration_ms"`
	PlayerSpeed      float64 `json:"player_speed"`
	PlayerSize       float64 `json:"player_size"`
}

type Map struct {
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	TileSize int                `json:"tile_size"`
	Rows     [][]world.TileKind `json:"rows"`
}

// UseCase describes the fixed rules and island every new game is built from.
type UseCase struct {
	Options farm.Options
}

func (u UseCase) Execute(_ context.Context, _ Request) (Response, error) {
	tuning := u.Options.Tuning
	if tuning == (farm.Tuning{}) {
		tuning = farm.DefaultTuning()
	}
	grid := u.Options.Grid
	if grid == nil {
		grid = world.Island(tuning.TileSize)
	}
	return Response{
		Rules: Rules{
			TickMS:           tuning.TickStep.Milliseconds(),
			GrowthDurationMS: tuning.GrowthDuration.Milliseconds(),
			MaxWater:         tuning.MaxWater,
			ActionRange:      tuning.ActionRange,
			StartingSeeds:    tuning.StartingSeeds,
			HarvestCrops:     tuning.HarvestCrops,
			HarvestSeeds:     tuning.HarvestSeeds,
			PoseDurationMS:   tuning.PoseDuration.Milliseconds(),
			PlayerSpeed:      tuning.PlayerSpeed,
			PlayerSize:       tuning.PlayerSize,
		},
		Toolbar: farm.Toolbar(),
		Map:     projectMap(grid),
	}, nil
}

func projectMap(grid *world.Grid) Map {
	rows := make([][]world.TileKind, grid.Height())
	for y := range rows {
		rows[y] = make([]world.TileKind, grid.Width())
		for x := range rows[y] {
			rows[y][x] = grid.Kind(world.Cell{X: x, Y: y})
		}
	}
	return Map{Width: grid.Width(), Height: grid.Height(), TileSize: grid.TileSize(), Rows: rows}
}
