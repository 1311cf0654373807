package middleware

import (
	"golang.org/x/time/rate"

	"lecture-pipeline/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. rps/burst bound the request rate
// across all API routes; zero rps disables limiting.
func New(l log.Logger, rps float64, burst int) Middleware {
	var limiter *rate.Limiter
	if rps > 0 {
		if burst <= 0 {
			// Fractional rps truncates to 0, and a zero-burst limiter
			// admits nothing.
			burst = int(rps)
			if burst < 1 {
				burst = 1
			}
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
