package handler

import (
	"sync"
	"time"
)

// SessionMode is the per-user "awaiting input" mode
type SessionMode int

const (
	ModeIdle SessionMode = iota
	ModeAwaitingSchedule
	ModeAwaitingSubstitutions
)

// SessionState is ephemeral per-user upload state. It lives only in process
// memory and is not persisted across restarts. At most one mode is active
// per user; any navigation event clears it unconditionally.
type SessionState struct {
	Mode SessionMode
	// Date is the target date, set only for ModeAwaitingSubstitutions
	Date time.Time
}

type sessionStore struct {
	mu     sync.RWMutex
	states map[int64]SessionState
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[int64]SessionState)}
}

func (s *sessionStore) Get(userID int64) SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[userID]
}

func (s *sessionStore) AwaitSchedule(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = SessionState{Mode: ModeAwaitingSchedule}
}

func (s *sessionStore) AwaitSubstitutions(userID int64, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = SessionState{Mode: ModeAwaitingSubstitutions, Date: date}
}

func (s *sessionStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}
