package session

import (
	"context"
	"time"

	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/stateview"
	"islandfarm/internal/domain/farm"

	"github.com/google/uuid"
)

type Request struct{}

type Response struct {
	SessionID string         `json:"session_id"`
	State     stateview.View `json:"state"`
}

// UseCase starts a new game on the island and journals its first event.
type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Events    ports.EventRepository
	Options   farm.Options
	NewID     func() string
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	game := farm.NewGame(newID(), u.Options, now)

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Games.Save(txCtx, game); err != nil {
			return err
		}
		return u.Events.Append(txCtx, game.ID, []farm.DomainEvent{farm.SessionStartedEvent(game, now)})
	})
	if err != nil {
		return Response{}, err
	}
	return Response{SessionID: game.ID, State: stateview.FromSnapshot(game.Snapshot())}, nil
}
