package stateview

import (
	"islandfarm/internal/domain/farm"
)

type Plot struct {
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Stage         string   `json:"stage"`
	Water         int      `json:"water"`
	TimeInStageMS int64    `json:"time_in_stage_ms"`
	Needs         []string `json:"needs"`
}

type Player struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	CellX           int     `json:"cell_x"`
	CellY           int     `json:"cell_y"`
	Facing          string  `json:"facing"`
	PoseTool        string  `json:"pose_tool,omitempty"`
	PoseRemainingMS int64   `json:"pose_remaining_ms"`
}

// View is the JSON shape of a game as every use case reports it.
type View struct {
	SessionID  string         `json:"session_id"`
	Ticks      int64          `json:"ticks"`
	Plots      []Plot         `json:"plots"`
	ReadyPlots int            `json:"ready_plots"`
	Inventory  map[string]int `json:"inventory"`
	Player     Player         `json:"player"`
}

func FromSnapshot(s farm.Snapshot) View {
	plots := make([]Plot, 0, len(s.Plots))
	ready := 0
	for _, p := range s.Plots {
		if p.Stage == farm.StageReady {
			ready++
		}
		plots = append(plots, Plot{
			X:             p.Cell.X,
			Y:             p.Cell.Y,
			Stage:         p.Stage.String(),
			Water:         p.Water,
			TimeInStageMS: p.TimeInStage.Milliseconds(),
			Needs:         derivePlotNeeds(p),
		})
	}
	inventory := make(map[string]int, len(s.Inventory))
	for item, n := range s.Inventory {
		inventory[string(item)] = n
	}
	return View{
		SessionID:  s.ID,
		Ticks:      s.Ticks,
		Plots:      plots,
		ReadyPlots: ready,
		Inventory:  inventory,
		Player: Player{
			X:               s.Player.Position.X,
			Y:               s.Player.Position.Y,
			CellX:           s.Player.Cell.X,
			CellY:           s.Player.Cell.Y,
			Facing:          string(s.Player.Facing),
			PoseTool:        string(s.Player.PoseTool),
			PoseRemainingMS: s.Player.PoseRemaining.Milliseconds(),
		},
	}
}
