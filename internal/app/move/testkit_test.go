package move

import (
	"context"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubGameRepo struct {
	games map[string]*farm.Game
}

func newStubGameRepo(games ...*farm.Game) *stubGameRepo {
	r := &stubGameRepo{games: map[string]*farm.Game{}}
	for _, g := range games {
		r.games[g.ID] = g
	}
	return r
}

func (r *stubGameRepo) Get(_ context.Context, sessionID string) (*farm.Game, error) {
	g, ok := r.games[sessionID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return g, nil
}

func (r *stubGameRepo) Save(_ context.Context, g *farm.Game) error {
	r.games[g.ID] = g
	return nil
}

type stubEventRepo struct {
	bySession map[string][]farm.DomainEvent
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{bySession: map[string][]farm.DomainEvent{}}
}

func (r *stubEventRepo) Append(_ context.Context, sessionID string, events []farm.DomainEvent) error {
	r.bySession[sessionID] = append(r.bySession[sessionID], events...)
	return nil
}

func (r *stubEventRepo) ListBySessionID(_ context.Context, sessionID string, _ int) ([]farm.DomainEvent, error) {
	return r.bySession[sessionID], nil
}
