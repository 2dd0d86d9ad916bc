package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kuma-assistant/internal/intent"
)

// localNow reads the clock in the configured timezone.
func (uc *implUseCase) localNow() time.Time {
	now := uc.now()
	if uc.dateMath != nil {
		return now.In(uc.dateMath.Location())
	}
	return now
}

func (uc *implUseCase) handleTime(_ context.Context, _ intent.Input) (string, error) {
	return fmt.Sprintf(intent.ReplyTime, uc.localNow().Format(intent.TimeLayout)), nil
}

func (uc *implUseCase) handleDate(_ context.Context, in intent.Input) (string, error) {
	now := uc.localNow()
	if uc.dateMath == nil {
		return fmt.Sprintf(intent.ReplyDate, now.Format(intent.DateLayout)), nil
	}

	day, phrase, ok := uc.dateMath.Find(in.Text, now)
	if !ok || phrase == "today" {
		return fmt.Sprintf(intent.ReplyDate, now.Format(intent.DateLayout)), nil
	}

	formatted := day.Format(intent.DateLayout)
	switch {
	case phrase == "yesterday":
		return fmt.Sprintf("Yesterday was %s.", formatted), nil
	case strings.HasPrefix(phrase, "in "):
		return fmt.Sprintf("%s it will be %s.", capitalize(phrase), formatted), nil
	default:
		return fmt.Sprintf("%s is %s.", capitalize(phrase), formatted), nil
	}
}

func (uc *implUseCase) handleJoke(_ context.Context, _ intent.Input) (string, error) {
	return intent.Jokes[uc.pick(len(intent.Jokes))], nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
