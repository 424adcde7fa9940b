package config

import (
	"fmt"
	"os"
	"time"

	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"

	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML shape of a tuning override. Absent fields keep
// their base value.
type TuningFile struct {
	TileSize      int          `yaml:"tile_size" validate:"omitempty,gte=8,lte=256"`
	TickMS        int          `yaml:"tick_ms" validate:"omitempty,gte=1,lte=1000"`
	GrowthMS      int          `yaml:"growth_ms" validate:"omitempty,gte=1"`
	MaxWater      int          `yaml:"max_water" validate:"omitempty,gte=1,lte=100"`
	ActionRange   *float64     `yaml:"action_range" validate:"omitempty,gte=0"`
	StartingSeeds *int         `yaml:"starting_seeds" validate:"omitempty,gte=0"`
	HarvestCrops  *int         `yaml:"harvest_crops" validate:"omitempty,gte=0"`
	HarvestSeeds  *int         `yaml:"harvest_seeds" validate:"omitempty,gte=0"`
	PoseMS        *int         `yaml:"pose_ms" validate:"omitempty,gte=0"`
	PlayerSpeed   float64      `yaml:"player_speed" validate:"omitempty,gt=0"`
	PlayerSize    float64      `yaml:"player_size" validate:"omitempty,gt=0"`
	PlayerStart   *PointConfig `yaml:"player_start"`
}

type PointConfig struct {
	X float64 `yaml:"x" validate:"gte=0"`
	Y float64 `yaml:"y" validate:"gte=0"`
}

// LoadTuning reads the YAML file at path and lays it over base.
func LoadTuning(path string, base farm.Tuning) (farm.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return farm.Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	var file TuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return farm.Tuning{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := validate.Struct(file); err != nil {
		return farm.Tuning{}, fmt.Errorf("%w: tuning file %s: %v", ErrInvalidConfig, path, err)
	}
	return file.Apply(base), nil
}

func (f TuningFile) Apply(base farm.Tuning) farm.Tuning {
	t := base
	if f.TileSize > 0 {
		t.TileSize = f.TileSize
	}
	if f.TickMS > 0 {
		t.TickStep = time.Duration(f.TickMS) * time.Millisecond
	}
	if f.GrowthMS > 0 {
		t.GrowthDuration = time.Duration(f.GrowthMS) * time.Millisecond
	}
	if f.MaxWater > 0 {
		t.MaxWater = f.MaxWater
	}
	if f.ActionRange != nil {
		t.ActionRange = *f.ActionRange
	}
	if f.StartingSeeds != nil {
		t.StartingSeeds = *f.StartingSeeds
	}
	if f.HarvestCrops != nil {
		t.HarvestCrops = *f.HarvestCrops
	}
	if f.HarvestSeeds != nil {
		t.HarvestSeeds = *f.HarvestSeeds
	}
	if f.PoseMS != nil {
		t.PoseDuration = time.Duration(*f.PoseMS) * time.Millisecond
	}
	if f.PlayerSpeed > 0 {
		t.PlayerSpeed = f.PlayerSpeed
	}
	if f.PlayerSize > 0 {
		t.PlayerSize = f.PlayerSize
	}
	if f.PlayerStart != nil {
		t.PlayerStart = world.Point{X: f.PlayerStart.X, Y: f.PlayerStart.Y}
	}
	return t
}
