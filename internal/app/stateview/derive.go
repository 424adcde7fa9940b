package stateview

import "islandfarm/internal/domain/farm"

const (
	NeedSeed    = "NEEDS_SEED"
	NeedWater   = "NEEDS_WATER"
	NeedHarvest = "NEEDS_HARVEST"
)

func derivePlotNeeds(p farm.PlotView) []string {
	needs := make([]string, 0, 2)
	switch {
	case p.Stage == farm.StageTilled:
		needs = append(needs, NeedSeed)
		if p.Water == 0 {
			needs = append(needs, NeedWater)
		}
	case p.Stage.Grows() && p.Water == 0:
		needs = append(needs, NeedWater)
	case p.Stage == farm.StageReady:
		needs = append(needs, NeedHarvest)
	}
	return needs
}
