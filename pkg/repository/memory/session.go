package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.ViewState
}

func newSessionRepository() *sessionRepository {
	return &sessionRepository{
		sessions: make(map[types.SessionID]*model.ViewState),
	}
}

func (r *sessionRepository) Create(ctx context.Context, state *model.ViewState) (*model.ViewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := state.Clone()
	if created.ID == "" {
		created.ID = types.NewSessionID()
	}
	if _, exists := r.sessions[created.ID]; exists {
		return nil, goerr.New("session already exists", goerr.V("id", created.ID))
	}

	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.sessions[created.ID] = created
	return created.Clone(), nil
}

func (r *sessionRepository) Get(ctx context.Context, id types.SessionID) (*model.ViewState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.sessions[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return state.Clone(), nil
}

func (r *sessionRepository) Put(ctx context.Context, state *model.ViewState) (*model.ViewState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sessions[state.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", state.ID))
	}

	updated := state.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.sessions[state.ID] = updated
	return updated.Clone(), nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*model.ViewState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	states := make([]*model.ViewState, 0, len(r.sessions))
	for _, state := range r.sessions {
		states = append(states, state.Clone())
	}
	return states, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id types.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return goerr.Wrap(ErrNotFound, "session not found", goerr.V("id", id))
	}

	delete(r.sessions, id)
	return nil
}
