package pressroom

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func TestLoginLimiterBlocksAfterMax(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLoginLimiter(2, time.Minute)
	limiter.now = clock.Now
	ip := "203.0.113.10"

	if !limiter.Check(ip) {
		t.Fatalf("expected first attempt to be allowed")
	}
	limiter.Record(ip)
	if !limiter.Check(ip) {
		t.Fatalf("expected second attempt to be allowed")
	}
	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected third attempt to be blocked")
	}
}

func TestLoginLimiterRefillsAfterWindow(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLoginLimiter(1, time.Minute)
	limiter.now = clock.Now
	ip := "203.0.113.20"

	limiter.Record(ip)
	if limiter.Check(ip) {
		t.Fatalf("expected attempt to be blocked right after a failure")
	}

	clock.Advance(61 * time.Second)
	if !limiter.Check(ip) {
		t.Fatalf("expected attempt after window to be allowed")
	}
}

func TestLoginLimiterIsPerIP(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLoginLimiter(1, time.Minute)
	limiter.now = clock.Now

	limiter.Record("203.0.113.30")
	if !limiter.Check("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Check("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestLoginLimiterPrunesIdleBuckets(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLoginLimiter(3, time.Minute)
	limiter.now = clock.Now

	limiter.Record("203.0.113.40")
	clock.Advance(2 * time.Minute)
	limiter.Record("203.0.113.41")

	if _, ok := limiter.buckets["203.0.113.40"]; ok {
		t.Errorf("expected idle bucket to be pruned")
	}
	if len(limiter.buckets) != 1 {
		t.Errorf("buckets = %d, want 1", len(limiter.buckets))
	}
}
