package action

import (
	"context"
	"time"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubGameRepo struct {
	games map[string]*farm.Game
	saves int
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
	r.saves++
	r.games[g.ID] = g
	return nil
}

type stubEventRepo struct {
	events []farm.DomainEvent
	err    error
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []farm.DomainEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListBySessionID(_ context.Context, _ string, _ int) ([]farm.DomainEvent, error) {
	return r.events, nil
}

type stubMetrics struct {
	success  []farm.Reason
	conflict int
	failure  int
}

func (m *stubMetrics) RecordSuccess(_ farm.Tool, reason farm.Reason) {
	m.success = append(m.success, reason)
}

func (m *stubMetrics) RecordConflict() { m.conflict++ }
func (m *stubMetrics) RecordFailure()  { m.failure++ }

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var (
	_ ports.TxManager       = stubTxManager{}
	_ ports.GameRepository  = (*stubGameRepo)(nil)
	_ ports.EventRepository = (*stubEventRepo)(nil)
	_ ports.ActionMetrics   = (*stubMetrics)(nil)
)
