package middleware

import (
	pkgLog "kitchen-voice-assistant/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds /api/command calls
// per source IP.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
