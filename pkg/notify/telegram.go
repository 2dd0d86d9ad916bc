package notify

import (
	"context"
	"sync"
	"time"

	"kuma-assistant/pkg/log"
)

const defaultSendTimeout = 10 * time.Second

// Sender is the subset of the Telegram bot the sink needs.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// TelegramSink forwards replies to one Telegram chat in the background.
type TelegramSink struct {
	sender  Sender
	chatID  int64
	timeout time.Duration
	l       log.Logger
	wg      sync.WaitGroup
}

func NewTelegramSink(sender Sender, chatID int64, l log.Logger) *TelegramSink {
	return &TelegramSink{
		sender:  sender,
		chatID:  chatID,
		timeout: defaultSendTimeout,
		l:       l,
	}
}

// Present returns immediately. The send outlives the request context but not the timeout.
func (s *TelegramSink) Present(ctx context.Context, text string) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		if err := s.sender.SendMessage(sendCtx, s.chatID, text); err != nil {
			s.l.Warnf(sendCtx, "notify.TelegramSink.Present: chat=%d: %v", s.chatID, err)
		}
	}()
}

// Wait blocks until every in-flight send has finished.
func (s *TelegramSink) Wait() {
	s.wg.Wait()
}
