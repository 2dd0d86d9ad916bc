package assistant

import "errors"

var (
	ErrNoCompleter = errors.New("remote completion is not configured")
)
