// Package ratelimit throttles calls to the timetable upstream. The
// upstream is an undocumented third-party API; staying under a modest
// request rate keeps the client from tripping whatever protection sits in
// front of it.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the rate limit settings applied per upstream endpoint.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig returns the default politeness limits.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// EndpointLimiter maintains one token bucket per upstream endpoint so a
// burst of price lookups cannot starve session creation.
type EndpointLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewEndpointLimiter creates a limiter with the given default settings.
func NewEndpointLimiter(config Config) *EndpointLimiter {
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// NewEndpointLimiterWithDefaults creates a limiter with DefaultConfig.
func NewEndpointLimiterWithDefaults() *EndpointLimiter {
	return NewEndpointLimiter(DefaultConfig())
}

// limiterFor returns the bucket for an endpoint, creating it on first use.
func (l *EndpointLimiter) limiterFor(endpoint string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[endpoint]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[endpoint] = limiter
	return limiter
}

// SetEndpointLimit overrides the limit for a single endpoint.
func (l *EndpointLimiter) SetEndpointLimit(endpoint string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the endpoint's bucket permits a call or the context is
// cancelled.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return l.limiterFor(endpoint).Wait(ctx)
}
