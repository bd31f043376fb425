package interfaces

import (
	"context"

	"github.com/secmon-lab/remedy/pkg/domain/model"
)

// SessionRepository stores conversation history per session. The stored
// window is bounded; older turns are discarded on append.
type SessionRepository interface {
	Get(ctx context.Context, id model.SessionID) (model.History, error)
	Append(ctx context.Context, id model.SessionID, messages ...model.Message) error
	Delete(ctx context.Context, id model.SessionID) error
}
