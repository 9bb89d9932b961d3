package middleware

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"devops-info/infoservice/internal/common"
)

// Clients idle for limiterTTL are forgotten.
const (
	limiterTTL             = 10 * time.Minute
	limiterCleanupInterval = time.Minute
)

// RateLimiter enforces a per client IP token bucket.
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	limiters common.CacheInterface
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return newRateLimiter(rps, burst, limiterTTL)
}

func newRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		limiters: common.NewCacheService(ttl, limiterCleanupInterval),
	}
}

// getLimiter returns the bucket for ip and pushes its expiry out by ttl, so
// only idle clients are evicted.
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	val := rl.limiters.GetOrAdd(ip, rl.ttl, func() any {
		return rate.NewLimiter(rl.limit, rl.burst)
	})
	rl.limiters.Set(ip, val, rl.ttl)
	return val.(*rate.Limiter)
}

// Middleware rejects requests over the limit with the fixed 429 body.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(ClientIP(r)).Allow() {
			common.RespondTooManyRequests(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP strips the port from r.RemoteAddr. Addresses without a port are
// returned as is.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
