// Package ratelimit throttles mutating API calls per client with token buckets.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/chainsafe/htlc-escrow/internal/metrics"
	apperrors "github.com/chainsafe/htlc-escrow/pkg/app/errors"
	apphttp "github.com/chainsafe/htlc-escrow/pkg/app/http"
	"github.com/chainsafe/htlc-escrow/pkg/auth"
)

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client. Clients are keyed by
// authenticated account when present, otherwise by remote IP.
type Limiter struct {
	perSecond rate.Limit
	burst     int
	idleTTL   time.Duration

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastPrune time.Time
	now       func() time.Time
}

// New creates a limiter allowing requestsPerMinute with the given burst.
func New(requestsPerMinute float64, burst int) *Limiter {
	perSecond := requestsPerMinute / 60.0
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		idleTTL:   defaultIdleTTL,
		visitors:  make(map[string]*visitor),
		now:       time.Now,
	}
}

// Allow reports whether the client may proceed now.
func (l *Limiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	v, ok := l.visitors[client]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.visitors[client] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// prune drops idle clients at most once per TTL. Caller holds l.mu.
func (l *Limiter) prune(now time.Time) {
	if now.Sub(l.lastPrune) < l.idleTTL {
		return
	}
	for id, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, id)
		}
	}
	l.lastPrune = now
}

// Middleware rejects requests over the limit with 429. Only non-GET requests
// are counted.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if !l.Allow(clientID(r)) {
			metrics.ErrorsTotal.WithLabelValues("ratelimit", "limited").Inc()
			w.Header().Set("Retry-After", "1")
			apphttp.DefaultErrorHandler(w, apperrors.WithReason(
				apperrors.RateLimitedError(http.StatusText(http.StatusTooManyRequests)), "RateLimited"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientID(r *http.Request) string {
	if account, ok := auth.AccountFromContext(r.Context()); ok {
		return "account:" + account
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
