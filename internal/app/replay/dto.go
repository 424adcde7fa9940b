package replay

import "islandfarm/internal/domain/farm"

type Request struct {
	SessionID string
	Limit     int
	// OccurredFrom and OccurredTo are inclusive unix seconds. Zero leaves
	// that side of the window open.
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events          []farm.DomainEvent `json:"events"`
	LatestInventory map[string]int     `json:"latest_inventory"`
}
