package farm

import (
	"errors"
	"time"

	"islandfarm/internal/domain/world"
)

const (
	DefaultGrowthDuration = 8000 * time.Millisecond
	DefaultMaxWater       = 3
	DefaultActionRange    = 4.0
	DefaultStartingSeeds  = 10
	DefaultHarvestCrops   = 1
	DefaultHarvestSeeds   = 2
	DefaultPoseDuration   = 500 * time.Millisecond
	DefaultPlayerSpeed    = 2.0
	DefaultPlayerSize     = 32.0
)

var ErrInvalidTuning = errors.New("invalid farm tuning")

type Tuning struct {
	TileSize       int
	TickStep       time.Duration
	GrowthDuration time.Duration
	MaxWater       int
	ActionRange    float64
	StartingSeeds  int
	HarvestCrops   int
	HarvestSeeds   int
	PoseDuration   time.Duration
	PlayerSpeed    float64
	PlayerSize     float64
	PlayerStart    world.Point
}

func DefaultTuning() Tuning {
	return Tuning{
		TileSize:       world.DefaultTileSize,
		TickStep:       world.DefaultTickStep,
		GrowthDuration: DefaultGrowthDuration,
		MaxWater:       DefaultMaxWater,
		ActionRange:    DefaultActionRange,
		StartingSeeds:  DefaultStartingSeeds,
		HarvestCrops:   DefaultHarvestCrops,
		HarvestSeeds:   DefaultHarvestSeeds,
		PoseDuration:   DefaultPoseDuration,
		PlayerSpeed:    DefaultPlayerSpeed,
		PlayerSize:     DefaultPlayerSize,
		PlayerStart:    world.Point{X: 400, Y: 300},
	}
}

func (t Tuning) Validate() error {
	if t.TileSize <= 0 || t.TickStep <= 0 || t.GrowthDuration <= 0 || t.MaxWater <= 0 {
		return ErrInvalidTuning
	}
	if t.ActionRange < 0 || t.StartingSeeds < 0 || t.HarvestCrops < 0 || t.HarvestSeeds < 0 {
		return ErrInvalidTuning
	}
	if t.PoseDuration < 0 || t.PlayerSpeed <= 0 || t.PlayerSize <= 0 {
		return ErrInvalidTuning
	}
	return nil
}
