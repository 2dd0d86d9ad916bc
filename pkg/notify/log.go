package notify

import (
	"context"

	"kuma-assistant/pkg/log"
)

// LogSink writes replies to the structured log.
type LogSink struct {
	l log.Logger
}

func NewLogSink(l log.Logger) *LogSink {
	return &LogSink{l: l}
}

func (s *LogSink) Present(ctx context.Context, text string) {
	s.l.Infof(ctx, "notify.LogSink.Present: %s", text)
}
