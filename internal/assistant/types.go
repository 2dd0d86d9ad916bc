package assistant

import "kuma-assistant/internal/intent"

// Resolution is the terminal state of one Query.
type Resolution string

const (
	ResolutionEmptyInput Resolution = "EMPTY_INPUT"
	ResolutionLocal      Resolution = "LOCAL_RESOLVED"
	ResolutionRemote     Resolution = "REMOTE_RESOLVED"
	ResolutionFallback   Resolution = "FALLBACK_RESOLVED"
	ResolutionError      Resolution = "ERROR_SURFACED"
)

// Resolved reports whether the turn produced a reply worth persisting.
func (r Resolution) Resolved() bool {
	return r == ResolutionLocal || r == ResolutionRemote || r == ResolutionFallback
}

type QueryInput struct {
	Text      string
	SessionID string
	ClientIP  string
	// ForceRemote skips the first local attempt.
	ForceRemote bool
}

type QueryOutput struct {
	Reply      string
	Resolution Resolution
	// Intent is set when a local rule produced the reply.
	Intent intent.Name
	// Provider is set when a remote provider produced the reply.
	Provider string
}
