package gemini

import "time"

const (
	DefaultModel  = "gemini-2.5-flash"
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one generateContent call. The llmprovider manager
	// applies its own global deadline on top through ctx.
	DefaultTimeout = 30 * time.Second

	generateURLFmt = "%s/models/%s:generateContent?key=%s"
)
