package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/prachij94/CancelItNowBot/internal/domain"

	cache "github.com/patrickmn/go-cache"
)

// Store holds per-user conversation state. Entries expire after an
// idle TTL (the TTL slides on every Get/Set) and are evicted by the
// cache janitor, so abandoned half-filled flows don't pile up in
// memory. It also hands out a per-user mutex so one user's updates are
// handled sequentially.
type Store struct {
	data *cache.Cache
	ttl  time.Duration

	locksMux sync.Mutex
	locks    map[int64]*sync.Mutex
}

// NewStore creates a session store with the given idle TTL
func NewStore(ttl time.Duration) *Store {
	cleanup := ttl / 2
	if cleanup < time.Minute {
		cleanup = time.Minute
	}

	return &Store{
		data:  cache.New(ttl, cleanup),
		ttl:   ttl,
		locks: make(map[int64]*sync.Mutex),
	}
}

// Get returns the user's session, or a fresh idle one if none exists
// or the previous one expired. Reading re-arms the idle timer.
func (s *Store) Get(userID int64) *domain.StateData {
	key := sessionKey(userID)

	if v, found := s.data.Get(key); found {
		state := v.(*domain.StateData)
		s.data.Set(key, state, s.ttl)
		return state
	}

	return &domain.StateData{State: domain.StateIdle}
}

// Set stores the user's session and re-arms the idle timer
func (s *Store) Set(userID int64, state *domain.StateData) {
	s.data.Set(sessionKey(userID), state, s.ttl)
}

// Reset puts the user back to idle, discarding any pending fields
func (s *Store) Reset(userID int64) {
	s.data.Delete(sessionKey(userID))
}

// Lock acquires the user's mutex and returns the unlock func. Distinct
// users proceed in parallel; two rapid updates from the same user are
// serialized.
func (s *Store) Lock(userID int64) func() {
	s.locksMux.Lock()
	mu, ok := s.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[userID] = mu
	}
	s.locksMux.Unlock()

	mu.Lock()
	return mu.Unlock
}

func sessionKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
