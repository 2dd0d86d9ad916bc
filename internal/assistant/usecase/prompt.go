package usecase

import (
	"context"
	"strings"

	"kuma-assistant/internal/assistant"
	"kuma-assistant/internal/model"
	"kuma-assistant/pkg/llmprovider"
)

// buildRequest assembles persona plus recent memories as the system message,
// then the session turns in order, then the new user message.
func (uc *implUseCase) buildRequest(ctx context.Context, turns []model.ConversationTurn, text string) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(turns)+1)
	for _, t := range turns {
		role := llmprovider.RoleUser
		if t.Role == model.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, llmprovider.Message{Role: llmprovider.RoleUser, Content: text})

	return &llmprovider.Request{
		System:      uc.systemPrompt(ctx),
		Messages:    messages,
		Temperature: uc.opt.Temperature,
		MaxTokens:   uc.opt.MaxTokens,
	}
}

// systemPrompt degrades to the bare persona when memory cannot be read.
func (uc *implUseCase) systemPrompt(ctx context.Context) string {
	memories, err := uc.memRepo.Recent(ctx, uc.opt.RecentMemories)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.systemPrompt: %v", err)
		return uc.opt.Persona
	}
	if len(memories) == 0 {
		return uc.opt.Persona
	}

	var sb strings.Builder
	sb.WriteString(uc.opt.Persona)
	sb.WriteString("\n\n")
	sb.WriteString(assistant.MemoryBlockHeader)
	for _, m := range memories {
		sb.WriteString("\n- ")
		sb.WriteString(m.Text)
	}
	return sb.String()
}
