package launcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"kuma-assistant/pkg/log"
)

// Exec hands targets to the platform opener (xdg-open, open, cmd /c start).
type Exec struct {
	goos  string
	start func(name string, args ...string) error
	l     log.Logger
}

func NewExec(l log.Logger) *Exec {
	return &Exec{
		goos:  runtime.GOOS,
		start: startDetached,
		l:     l,
	}
}

func (e *Exec) OpenApp(ctx context.Context, name string) { e.open(ctx, KindApp, name) }
func (e *Exec) OpenFolder(ctx context.Context, path string) {
	e.open(ctx, KindFolder, expandHome(path))
}
func (e *Exec) OpenURL(ctx context.Context, url string) { e.open(ctx, KindURL, url) }

func (e *Exec) open(ctx context.Context, kind Kind, target string) {
	name, args := e.command(kind, target)
	if err := e.start(name, args...); err != nil {
		e.l.Warnf(ctx, "launcher.Exec.open: %s %q: %v", kind, target, err)
		return
	}
	e.l.Debugf(ctx, "launcher.Exec.open: %s %q", kind, target)
}

func (e *Exec) command(kind Kind, target string) (string, []string) {
	switch e.goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", target}
	case "darwin":
		if kind == KindApp {
			return "open", []string{"-a", target}
		}
		return "open", []string{target}
	default:
		if kind == KindApp {
			return target, nil
		}
		return "xdg-open", []string{target}
	}
}

// expandHome resolves a leading "~" against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// startDetached starts the command and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
