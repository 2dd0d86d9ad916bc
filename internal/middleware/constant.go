package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	maxRateLimitKeys = 1000
	rateLimitKeyTTL  = 5 * time.Minute
)
