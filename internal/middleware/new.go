package middleware

import (
	"task-management/pkg/log"
)

// Config holds the tunables of the gateway middlewares.
type Config struct {
	// RateLimitPerMin is the number of requests each client IP may send per
	// minute. Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
