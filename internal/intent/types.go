package intent

import (
	"context"
	"strings"

	"kuma-assistant/pkg/launcher"
)

// Name identifies an intent category.
type Name string

const (
	NameMemoryWrite Name = "memory_write"
	NameMemoryRead  Name = "memory_read"
	NameTaskWrite   Name = "task_write"
	NameTaskClear   Name = "task_clear"
	NameTaskRead    Name = "task_read"
	NameTime        Name = "time"
	NameDate        Name = "date"
	NameJoke        Name = "joke"
	NameWeather     Name = "weather"
	NameShortcut    Name = "shortcut"
)

// Input is one utterance plus the request metadata handlers may need.
type Input struct {
	Text     string
	ClientIP string
}

// Result is a resolved local reply.
type Result struct {
	Intent Name
	Reply  string
}

// Rule pairs a predicate on normalized text with its handler.
type Rule struct {
	Name   Name
	Match  func(text string) bool
	Handle func(ctx context.Context, in Input) (string, error)
}

// Shortcut maps a fixed phrase to a launch target.
type Shortcut struct {
	Phrase string
	Kind   launcher.Kind
	Target string
	Reply  string
}

// Normalize lower-cases the text, trims it and collapses inner whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
