// Package notify presents assistant replies to the user.
// Presenting is fire-and-forget: failures are logged, never returned.
package notify

import "context"

// Sink presents a reply (speech, desktop notification, chat message).
type Sink interface {
	Present(ctx context.Context, text string)
}

// Multi fans a reply out to every sink in order.
type Multi []Sink

func (m Multi) Present(ctx context.Context, text string) {
	for _, s := range m {
		if s != nil {
			s.Present(ctx, text)
		}
	}
}
