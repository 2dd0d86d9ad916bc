package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"kuma-assistant/internal/intent"
)

func (uc *implUseCase) Route(ctx context.Context, in intent.Input) (intent.Result, error) {
	in.Text = intent.Normalize(in.Text)
	if in.Text == "" {
		return intent.Result{}, intent.ErrNoMatch
	}

	for _, rule := range uc.rules {
		if !rule.Match(in.Text) {
			continue
		}

		reply, err := rule.Handle(ctx, in)
		if err != nil {
			uc.l.Errorf(ctx, "intent.usecase.Route: %s: %v", rule.Name, err)
			return intent.Result{Intent: rule.Name}, fmt.Errorf("%s: %w", rule.Name, err)
		}

		uc.l.Debugf(ctx, "intent.usecase.Route: matched %s", rule.Name)
		return intent.Result{Intent: rule.Name, Reply: reply}, nil
	}

	return intent.Result{}, intent.ErrNoMatch
}

func (uc *implUseCase) Rules() []intent.Rule {
	out := make([]intent.Rule, len(uc.rules))
	copy(out, uc.rules)
	return out
}

func matchAny(phrases []string) func(string) bool {
	return func(text string) bool {
		return containsAny(text, phrases)
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// hasWord reports whether word appears in text as a whole word.
func hasWord(text, word string) bool {
	for _, w := range strings.Fields(text) {
		if trimPunct(w) == word {
			return true
		}
	}
	return false
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}

// matchMemoryWrite excludes the memory-read phrases so "what do you remember" reads.
func matchMemoryWrite(text string) bool {
	return strings.Contains(text, intent.TokenRemember) && !containsAny(text, intent.MemoryReadPhrases)
}

func matchTime(text string) bool {
	return hasWord(text, "time") || containsAny(text, intent.TimePhrases)
}

func matchDate(text string) bool {
	return hasWord(text, "date") || containsAny(text, intent.DatePhrases)
}

func matchJoke(text string) bool {
	return hasWord(text, "joke") || containsAny(text, intent.JokePhrases)
}
