package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/stateview"
	"islandfarm/internal/domain/farm"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
)

// UseCase applies one tool to one tile. A tool the game refuses is not an
// error: the outcome says what happened and the response is still 200.
//
// The game is changed in place before the journal is written. When the
// journal write fails the tool has still been applied: Execute returns the
// error without an outcome and the next observe shows the new state.
type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Events    ports.EventRepository
	Metrics   ports.ActionMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	tool, ok := farm.ParseTool(req.Tool)
	if !ok {
		return Response{}, ErrInvalidActionParams
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	var result farm.Outcome
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		game, err := u.Games.Get(txCtx, req.SessionID)
		if err != nil {
			return err
		}
		now := nowFn()
		events := farm.CropAdvancedEvents(game.AdvanceTo(now), now)

		result = game.Act(tool, req.Target)
		events = append(events, farm.ToolUsedEvent(result, game.Inventory().Snapshot(), now))
		if err := u.Events.Append(txCtx, game.ID, events); err != nil {
			return err
		}
		if err := u.Games.Save(txCtx, game); err != nil {
			return err
		}
		out = Response{Outcome: toOutcome(result), State: stateview.FromSnapshot(game.Snapshot())}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(result.Tool, result.Reason)
	}
	return out, nil
}

func toOutcome(o farm.Outcome) Outcome {
	return Outcome{
		Tool:    string(o.Tool),
		X:       o.Target.X,
		Y:       o.Target.Y,
		InRange: o.InRange,
		Swung:   o.Swung,
		Changed: o.Changed,
		Facing:  string(o.Facing),
		Reason:  string(o.Reason),
	}
}
