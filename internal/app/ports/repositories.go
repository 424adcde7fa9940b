package ports

import (
	"context"

	"islandfarm/internal/domain/farm"
)

// GameRepository holds live games. Games are mutated in place, so callers
// must hold the TxManager while touching one. Save also marks the game as
// recently used.
type GameRepository interface {
	Get(ctx context.Context, sessionID string) (*farm.Game, error)
	Save(ctx context.Context, game *farm.Game) error
}

// EventRepository is the per-session journal. ListBySessionID returns the
// newest limit events in the order they happened.
type EventRepository interface {
	Append(ctx context.Context, sessionID string, events []farm.DomainEvent) error
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]farm.DomainEvent, error)
}
