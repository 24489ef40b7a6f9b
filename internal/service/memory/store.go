package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridianhq/hr-assistant/backend/internal/model/chat"
)

// DefaultCap bounds turns retained per session; oldest turns drop first.
const DefaultCap = 50

// Store keeps conversation history in memory for the lifetime of the process.
// Session ids are opaque and client-generated: appending to an unknown id
// creates the session, so there is no create/not-found distinction.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]chat.Turn
	cap      int
}

// NewStore builds a store retaining at most cap turns per session. A non
// positive cap falls back to DefaultCap.
func NewStore(cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{
		sessions: make(map[string][]chat.Turn),
		cap:      cap,
	}
}

// Append records a turn at the end of the session, creating the session if
// absent. Turn id and timestamp are assigned here so callers cannot break
// append ordering.
func (s *Store) Append(sessionID string, turn chat.Turn) chat.Turn {
	turn.ID = uuid.NewString()
	turn.SessionID = sessionID
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.sessions[sessionID], turn)
	if len(turns) > s.cap {
		turns = turns[len(turns)-s.cap:]
	}
	s.sessions[sessionID] = turns
	return turn
}

// Recent returns the last limit turns for the session, oldest first. Unknown
// sessions yield an empty slice, never an error. The result is a copy.
func (s *Store) Recent(sessionID string, limit int) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied
}

// Clear forgets the session. Idempotent.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Sessions lists ids of sessions holding at least one turn.
func (s *Store) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
