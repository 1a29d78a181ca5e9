// Package session provides the session-keyed store for conversation state.
// Every core operation takes a session id; there is no ambient global state.
package session

import (
	"context"
	"errors"
	"sync"

	"intakeflow/internal/model"
)

// ErrNotFound is returned when a session id resolves to nothing
var ErrNotFound = errors.New("session not found")

// Store persists one ConversationState per session id
type Store interface {
	Save(ctx context.Context, state *model.ConversationState) error
	Get(ctx context.Context, id string) (*model.ConversationState, error)
	Delete(ctx context.Context, id string) error

	// WithLock serializes fn against other calls for the same session.
	// Concurrent events within one session are not supported; callers
	// serialize through here.
	WithLock(id string, fn func() error) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.ConversationState
	locks    sync.Map // session id -> *sync.Mutex
}

// NewMemoryStore returns the default in-process store. State lives only for
// the lifetime of the process.
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]*model.ConversationState),
	}
}

func (s *memoryStore) Save(ctx context.Context, state *model.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.ID] = state.Clone()
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*model.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	s.locks.Delete(id)
	return nil
}

func (s *memoryStore) WithLock(id string, fn func() error) error {
	mu := sessionLock(&s.locks, id)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func sessionLock(locks *sync.Map, id string) *sync.Mutex {
	v, _ := locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}
