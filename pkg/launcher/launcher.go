// Package launcher opens applications, folders and URLs on the host.
// Every call is fire-and-forget.
package launcher

import "context"

// Launcher starts desktop targets without waiting for them.
type Launcher interface {
	OpenApp(ctx context.Context, name string)
	OpenFolder(ctx context.Context, path string)
	OpenURL(ctx context.Context, url string)
}

// Kind names a launch target type.
type Kind string

const (
	KindApp    Kind = "app"
	KindFolder Kind = "folder"
	KindURL    Kind = "url"
)
