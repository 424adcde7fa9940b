package ports

import "errors"

var (
	// ErrNotFound means no live game, or no journal, exists for a session id.
	ErrNotFound = errors.New("session not found")
	// ErrConflict means a game could not be stored under its session id.
	ErrConflict = errors.New("session conflict")
)
