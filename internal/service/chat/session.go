package chat

import (
	"sync"

	"github.com/rmmentors/alicia/internal/core"
)

// Session holds one conversation's state: an append-only history and a
// student profile set at most once. It is owned by the caller, so multiple
// independent sessions can coexist. State lives only for the process
// lifetime; nothing is persisted.
//
// The mutex serializes whole turns: Assistant.Turn holds it from retrieval
// through the final history append, so history ordering and the
// at-most-once profile transition survive concurrent callers.
type Session struct {
	mu      sync.Mutex
	history []core.Message
	profile *core.Profile
}

func NewSession() *Session {
	return &Session{}
}

// History returns a copy of the conversation so far.
func (s *Session) History() []core.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Message(nil), s.history...)
}

// Profile returns a copy of the student profile, or nil while undetermined.
func (s *Session) Profile() *core.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Reset clears history and profile back to the initial empty state. Total
// and immediate; calling it twice is the same as calling it once.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.profile = nil
}
