package observe

import "islandfarm/internal/app/stateview"

type Request struct {
	SessionID string
}

type Response struct {
	State    stateview.View `json:"state"`
	Advanced []Advance      `json:"advanced"`
}

type Advance struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	From string `json:"from"`
	To   string `json:"to"`
}
