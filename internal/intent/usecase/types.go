package usecase

import (
	"time"

	"kuma-assistant/internal/intent"
)

// Options carries the router's injectable collaborators. Zero values get defaults.
type Options struct {
	// Now is the local clock.
	Now func() time.Time
	// Pick returns an index in [0, n) for the joke intent.
	Pick func(n int) int
	// Shortcuts are checked before the built-in table.
	Shortcuts []intent.Shortcut
}
