package launcher

import (
	"context"

	"kuma-assistant/pkg/log"
)

// Noop only logs what would have been opened. Used on headless servers.
type Noop struct {
	l log.Logger
}

func NewNoop(l log.Logger) *Noop {
	return &Noop{l: l}
}

func (n *Noop) OpenApp(ctx context.Context, name string) {
	n.l.Infof(ctx, "launcher.Noop: would open %s %q", KindApp, name)
}

func (n *Noop) OpenFolder(ctx context.Context, path string) {
	n.l.Infof(ctx, "launcher.Noop: would open %s %q", KindFolder, path)
}

func (n *Noop) OpenURL(ctx context.Context, url string) {
	n.l.Infof(ctx, "launcher.Noop: would open %s %q", KindURL, url)
}
