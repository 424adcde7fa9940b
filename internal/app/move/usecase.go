package move

import (
	"context"
	"errors"
	"strings"
	"time"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/stateview"
	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"
)

const MaxSteps = 64

var (
	ErrInvalidRequest    = errors.New("invalid move request")
	ErrInvalidMoveParams = errors.New("invalid move params")
)

// UseCase walks the farmer. Every step is one movement frame; walking stops
// at the first step the island refuses.
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
	dir, ok := world.ParseDirection(req.Direction)
	if !ok || req.Steps < 0 || req.Steps > MaxSteps {
		return Response{}, ErrInvalidMoveParams
	}
	steps := max(req.Steps, 1)
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
		events := farm.CropAdvancedEvents(game.AdvanceTo(now), now)

		taken := 0
		for taken < steps && game.Move(dir) {
			taken++
		}
		snap := game.Snapshot()
		events = append(events, farm.PlayerMovedEvent(snap.Player, taken > 0, now))
		if err := u.Events.Append(txCtx, game.ID, events); err != nil {
			return err
		}
		if err := u.Games.Save(txCtx, game); err != nil {
			return err
		}
		out = Response{Moved: taken > 0, Steps: taken, State: stateview.FromSnapshot(snap)}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
