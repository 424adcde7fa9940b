package replay

import (
	"context"
	"errors"
	"strings"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListBySessionID(ctx, req.SessionID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, LatestInventory: reconstructInventory(events)}, nil
}

func filterByTimeWindow(events []farm.DomainEvent, from, to int64) []farm.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]farm.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstructInventory returns the inventory recorded by the last event that
// carries one, or an empty map when none does.
func reconstructInventory(events []farm.DomainEvent) map[string]int {
	out := map[string]int{}
	for i := len(events) - 1; i >= 0; i-- {
		after, ok := events[i].Payload["inventory_after"].(map[string]any)
		if !ok {
			continue
		}
		for item, v := range after {
			out[item] = int(num(v))
		}
		return out
	}
	return out
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
