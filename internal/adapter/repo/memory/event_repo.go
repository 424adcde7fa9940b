package memory

import (
	"context"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, sessionID string, events []farm.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()
	r.store.events[sessionID] = append(r.store.events[sessionID], events...)
	return nil
}

func (r EventRepo) ListBySessionID(_ context.Context, sessionID string, limit int) ([]farm.DomainEvent, error) {
	r.store.eventsMu.Lock()
	defer r.store.eventsMu.Unlock()
	all := r.store.events[sessionID]
	if len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]farm.DomainEvent, len(all))
	copy(out, all)
	return out, nil
}
