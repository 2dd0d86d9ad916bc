package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"kuma-assistant/internal/intent"
	"kuma-assistant/pkg/launcher"
)

func (uc *implUseCase) matchShortcut(text string) bool {
	if strings.Contains(text, intent.PhraseSearchFor) || strings.HasSuffix(text, strings.TrimSpace(intent.PhraseSearchFor)) {
		return true
	}
	_, ok := uc.findShortcut(text)
	return ok
}

func (uc *implUseCase) findShortcut(text string) (intent.Shortcut, bool) {
	for _, s := range uc.shortcuts {
		if strings.Contains(text, s.Phrase) {
			return s, true
		}
	}
	return intent.Shortcut{}, false
}

// handleShortcut fires the launch and answers at once; the launch outcome never reaches the reply.
func (uc *implUseCase) handleShortcut(ctx context.Context, in intent.Input) (string, error) {
	if s, ok := uc.findShortcut(in.Text); ok {
		uc.launch(ctx, s.Kind, s.Target)
		return s.Reply, nil
	}

	query := ""
	if idx := strings.Index(in.Text, intent.PhraseSearchFor); idx >= 0 {
		query = trimPunct(in.Text[idx+len(intent.PhraseSearchFor):])
	}
	if query == "" {
		return intent.ReplySearchClarify, nil
	}

	uc.launch(ctx, launcher.KindURL, intent.SearchURL+url.QueryEscape(query))
	return fmt.Sprintf(intent.ReplySearching, query), nil
}

func (uc *implUseCase) launch(ctx context.Context, kind launcher.Kind, target string) {
	switch kind {
	case launcher.KindApp:
		uc.launcher.OpenApp(ctx, target)
	case launcher.KindFolder:
		uc.launcher.OpenFolder(ctx, target)
	default:
		uc.launcher.OpenURL(ctx, target)
	}
}
