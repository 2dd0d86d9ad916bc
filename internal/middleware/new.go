package middleware

import (
	"kuma-assistant/pkg/log"
)

// Config configures the middleware set.
type Config struct {
	// RateLimitPerMin is the per-client budget for rate-limited routes. Zero disables limiting.
	RateLimitPerMin int
	// RateLimitBurst defaults to a tenth of RateLimitPerMin, at least 1.
	RateLimitBurst int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	}
	return m
}
