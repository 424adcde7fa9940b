package memory

import (
	"context"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) Get(_ context.Context, sessionID string) (*farm.Game, error) {
	g, ok := r.store.games.Get(sessionID)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return g, nil
}

func (r GameRepo) Save(_ context.Context, game *farm.Game) error {
	if game == nil || game.ID == "" {
		return ports.ErrConflict
	}
	r.store.games.Add(game.ID, game)
	return nil
}
