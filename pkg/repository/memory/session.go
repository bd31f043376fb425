package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// sessionWindow bounds the stored conversation history per session
const sessionWindow = 20

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]model.History
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[model.SessionID]model.History),
	}
}

func (r *sessionRepository) Get(ctx context.Context, id model.SessionID) (model.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("session_id", id))
	}

	copied := make(model.History, len(history))
	copy(copied, history)
	return copied, nil
}

func (r *sessionRepository) Append(ctx context.Context, id model.SessionID, messages ...model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.sessions[id], messages...)
	if len(history) > sessionWindow {
		history = history[len(history)-sessionWindow:]
	}
	r.sessions[id] = history
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id model.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "session not found", goerr.V("session_id", id))
	}
	delete(r.sessions, id)
	return nil
}
