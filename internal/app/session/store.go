package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novashop/novashop-backend/pkg/logger"
)

// Store is the in-process session registry. State is process-lifetime only:
// nothing survives a restart, matching the storefront's contract that carts
// and filters are lost on reload of the backend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, minting a fresh one (with a new
// uuid) when id is empty or unknown. The second return value reports whether
// a new session was created.
func (st *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		st.mu.RLock()
		s, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return s, false
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if id != "" {
		if s, ok := st.sessions[id]; ok {
			return s, false
		}
	}

	s := newSession(uuid.NewString())
	st.sessions[s.id] = s

	logger.Debug("Session created", map[string]interface{}{
		"session_id": s.id,
		"total":      len(st.sessions),
	})
	return s, true
}

// Lookup returns the session for id if it exists.
func (st *Store) Lookup(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than maxIdle and returns how many were
// removed. Called periodically by the janitor to bound memory.
func (st *Store) Sweep(maxIdle time.Duration) int {
	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.IdleSince(now) > maxIdle {
			delete(st.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		logger.Info("Swept idle sessions", map[string]interface{}{
			"removed":   removed,
			"remaining": len(st.sessions),
		})
	}
	return removed
}
