package interfaces

import (
	"context"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
)

// SessionRepository stores the view state of active dashboard sessions.
// View state is session-scoped and carries no durability guarantee.
type SessionRepository interface {
	Create(ctx context.Context, state *model.ViewState) (*model.ViewState, error)
	Get(ctx context.Context, id types.SessionID) (*model.ViewState, error)
	Put(ctx context.Context, state *model.ViewState) (*model.ViewState, error)
	List(ctx context.Context) ([]*model.ViewState, error)
	Delete(ctx context.Context, id types.SessionID) error
}
