package middleware

import (
	pkgLog "tasq/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers: identity extraction and
// per-user rate limiting.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// Config holds middleware tunables.
type Config struct {
	// RateLimitPerMin caps assistant chat requests per user per minute.
	RateLimitPerMin int
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
