package usecase

import (
	"context"

	"kuma-assistant/internal/model"
)

func (uc *implUseCase) Conversation(_ context.Context, sessionID string) []model.ConversationTurn {
	return uc.sessions.Get(sessionID).Snapshot()
}

func (uc *implUseCase) ClearConversation(ctx context.Context, sessionID string) {
	uc.sessions.Reset(sessionID)
	uc.l.Infof(ctx, "assistant.usecase.ClearConversation: session %q reset", sessionID)
}
