package move

import "islandfarm/internal/app/stateview"

type Request struct {
	SessionID string
	Direction string
	// Steps is the number of movement frames to apply. Zero means one.
	Steps int
}

type Response struct {
	Moved bool           `json:"moved"`
	Steps int            `json:"steps"`
	State stateview.View `json:"state"`
}
