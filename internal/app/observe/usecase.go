package observe

import (
	"context"
	"errors"
	"strings"
	"time"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/stateview"
	"islandfarm/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid observe request")

// UseCase brings a game up to the current time and reports it.
type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Events    ports.EventRepository
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		game, err := u.Games.Get(txCtx, req.SessionID)
		if err != nil {
			return err
		}
		now := nowFn()
		advances := game.AdvanceTo(now)
		if events := farm.CropAdvancedEvents(advances, now); len(events) > 0 {
			if err := u.Events.Append(txCtx, game.ID, events); err != nil {
				return err
			}
		}
		if err := u.Games.Save(txCtx, game); err != nil {
			return err
		}
		out = Response{State: stateview.FromSnapshot(game.Snapshot()), Advanced: toAdvances(advances)}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func toAdvances(in []farm.Advance) []Advance {
	out := make([]Advance, 0, len(in))
	for _, a := range in {
		out = append(out, Advance{X: a.Cell.X, Y: a.Cell.Y, From: a.From.String(), To: a.To.String()})
	}
	return out
}
