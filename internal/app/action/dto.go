package action

import (
	"islandfarm/internal/app/stateview"
	"islandfarm/internal/domain/world"
)

type Request struct {
	SessionID string
	Tool      string
	Target    world.Cell
}

type Response struct {
	Outcome Outcome        `json:"outcome"`
	State   stateview.View `json:"state"`
}

type Outcome struct {
	Tool    string `json:"tool"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	InRange bool   `json:"in_range"`
	Swung   bool   `json:"swung"`
	Changed bool   `json:"changed"`
	Facing  string `json:"facing"`
	Reason  string `json:"reason,omitempty"`
}
