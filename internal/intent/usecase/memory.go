package usecase

import (
	"context"
	"fmt"
	"strings"

	"kuma-assistant/internal/intent"
	"kuma-assistant/internal/model"
)

func (uc *implUseCase) handleMemoryWrite(ctx context.Context, in intent.Input) (string, error) {
	idx := strings.Index(in.Text, intent.TokenRemember)
	fact := trimPunct(in.Text[idx+len(intent.TokenRemember):])
	if fact == "" {
		return intent.ReplyRememberClarify, nil
	}

	if err := uc.memRepo.Append(ctx, model.NewMemoryEntry(fact, uc.now())); err != nil {
		return "", fmt.Errorf("save memory: %w", err)
	}
	return fmt.Sprintf(intent.ReplyRemembered, fact), nil
}

func (uc *implUseCase) handleMemoryRead(ctx context.Context, _ intent.Input) (string, error) {
	entries, err := uc.memRepo.Recent(ctx, intent.MemoryReadLimit)
	if err != nil {
		return "", fmt.Errorf("load memory: %w", err)
	}
	if len(entries) == 0 {
		return intent.ReplyNothingStored, nil
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.Text
	}
	return numbered(intent.ReplyMemoryHeader, items), nil
}

func numbered(header string, items []string) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, item := range items {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, item)
	}
	return sb.String()
}
