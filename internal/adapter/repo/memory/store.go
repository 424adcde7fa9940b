package memory

import (
	"sync"
	"time"

	"islandfarm/internal/domain/farm"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCapacity = 1024
	DefaultTTL      = 30 * time.Minute
)

// Store keeps live games in a bounded LRU whose entries expire after ttl
// without a Save. A session's journal is dropped together with its game.
type Store struct {
	mu    sync.Mutex
	games *expirable.LRU[string, *farm.Game]

	eventsMu sync.Mutex
	events   map[string][]farm.DomainEvent
}

func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{events: make(map[string][]farm.DomainEvent)}
	s.games = expirable.NewLRU[string, *farm.Game](capacity, s.onEvict, ttl)
	return s
}

func (s *Store) onEvict(sessionID string, _ *farm.Game) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()
	delete(s.events, sessionID)
}

// Len is the number of live games.
func (s *Store) Len() int {
	return s.games.Len()
}
