package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/repository/memory"
)

// ChatInput is one conversational turn. A zero SessionID starts a new
// session.
type ChatInput struct {
	SessionID      model.SessionID
	Message        string
	Device         *model.DeviceInfo
	TechnicalLevel types.TechnicalLevel
}

// ChatOutput carries the diagnosis plus the session the turn belongs to
type ChatOutput struct {
	SessionID model.SessionID
	Diagnosis *model.Diagnosis
}

// Chat persists the conversation around a Diagnose call: prior turns are
// loaded as history, and both the user message and the response are
// appended afterwards. An unknown session ID starts fresh under that ID
// rather than failing the turn.
func (uc *UseCases) Chat(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = model.NewSessionID()
	}

	history, err := uc.repo.Session().Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, memory.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to load session", goerr.V("session_id", sessionID))
		}
		history = nil
	}

	diagnosis, err := uc.Diagnose(ctx, DiagnoseInput{
		Problem:        input.Message,
		History:        history,
		Device:         input.Device,
		TechnicalLevel: input.TechnicalLevel,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.repo.Session().Append(ctx, sessionID,
		model.Message{Role: types.RoleUser, Content: input.Message, CreatedAt: now},
		model.Message{Role: types.RoleAssistant, Content: diagnosis.Response, CreatedAt: now},
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store conversation turn", goerr.V("session_id", sessionID))
	}

	return &ChatOutput{
		SessionID: sessionID,
		Diagnosis: diagnosis,
	}, nil
}

// GetSession returns the stored history for a session
func (uc *UseCases) GetSession(ctx context.Context, id model.SessionID) (model.History, error) {
	return uc.repo.Session().Get(ctx, id)
}

// DeleteSession removes a session and its history
func (uc *UseCases) DeleteSession(ctx context.Context, id model.SessionID) error {
	return uc.repo.Session().Delete(ctx, id)
}
