package intent

import "errors"

var (
	// ErrNoMatch means no local rule applies and the caller should escalate.
	ErrNoMatch = errors.New("no local intent matched")
)
