package rate_limiter

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a visitor is remembered after its last request.
const DefaultIdleTimeout = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client IP.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	rps      rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

func New(rps float64, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
	}
}

func (l *Limiter) getVisitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(l.rps, l.burst)
		l.visitors[ip] = &clientLimiter{limiter, l.now()}
		return limiter
	}

	v.lastSeen = l.now()
	return v.limiter
}

// Allow reports whether a request from ip may proceed now.
func (l *Limiter) Allow(ip string) bool {
	return l.getVisitor(ip).AllowN(l.now(), 1)
}

// Cleanup forgets visitors idle for longer than the idle timeout.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > l.idle {
			delete(l.visitors, ip)
		}
	}
}

// StartCleanupLoop runs Cleanup every interval until ctx is done.
func (l *Limiter) StartCleanupLoop(ctx context.Context, interval time.Duration, logger logrus.FieldLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
			logger.WithField("visitors", l.Visitors()).Debug("rate limiter cleanup")
		}
	}
}

// Visitors is the number of clients currently tracked.
func (l *Limiter) Visitors() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

