package pressroom

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginLimiter throttles failed login attempts per client IP. Each IP gets a
// bucket of max attempts that refills over window.
type LoginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*loginBucket
	max     int
	window  time.Duration
	now     func() time.Time
}

type loginBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLoginLimiter creates a LoginLimiter that allows max failures per window.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		buckets: make(map[string]*loginBucket),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Check reports whether ip may attempt a login. It consumes nothing.
func (l *LoginLimiter) Check(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		return true
	}
	return b.limiter.TokensAt(l.now()) >= 1
}

// Record registers a failed attempt for ip.
func (l *LoginLimiter) Record(ip string) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)
	b, ok := l.buckets[ip]
	if !ok {
		every := rate.Every(l.window / time.Duration(l.max))
		b = &loginBucket{limiter: rate.NewLimiter(every, l.max)}
		l.buckets[ip] = b
	}
	b.limiter.AllowN(now, 1)
	b.lastSeen = now
}

// prune drops buckets that have been idle long enough to be full again.
func (l *LoginLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	for ip, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
}
