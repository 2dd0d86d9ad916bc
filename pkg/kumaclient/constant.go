package kumaclient

import "time"

const (
	DefaultBaseURL = "http://127.0.0.1:8000"
	DefaultTimeout = 20 * time.Second

	headerSessionID  = "X-Session-ID"
	headerResolution = "X-Kuma-Resolution"
	headerProvider   = "X-Kuma-Provider"

	// ScreenReadPrefix marks text captured from the screen rather than spoken.
	ScreenReadPrefix = "Screen read:\n"
)
