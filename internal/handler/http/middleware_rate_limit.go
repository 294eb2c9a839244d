package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/app"
	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long the bucket of a silent client is kept.
	limiterIdleTTL = 10 * time.Minute
	// limiterCleanupInterval is how often expired buckets are evicted.
	limiterCleanupInterval = time.Minute
)

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache

	limit rate.Limit
	burst int
}

func newClientLimiter(cfg config.RateLimit) *clientLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &clientLimiter{
		limiters: cache.New(limiterIdleTTL, limiterCleanupInterval),
		limit:    rate.Limit(cfg.RPS),
		burst:    burst,
	}
}

// get returns the bucket of key and extends its lifetime.
func (l *clientLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(key); ok {
		limiter := v.(*rate.Limiter)
		l.limiters.SetDefault(key, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(key, limiter)
	return limiter
}

// rateLimit answers 429 Too Many Requests once the client's bucket is empty.
func (l *clientLimiter) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIP(r)

		if !l.get(client).Allow() {
			logger.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which middleware.RealIP may
// already have replaced with a bare address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
