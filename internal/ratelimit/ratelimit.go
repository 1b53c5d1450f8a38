// Package ratelimit spaces outbound requests per host so feed and article
// fetching stays polite to upstream sites.
package ratelimit

import (
	"net/url"
	"strings"
	"sync"
	"time"
)

// HostLimiter enforces a minimum interval between requests to the same
// host. Different hosts do not block each other.
type HostLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastHit  map[string]time.Time
}

// NewHostLimiter creates a limiter with the given per-host interval.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{
		interval: interval,
		lastHit:  make(map[string]time.Time),
	}
}

// Wait blocks until a request to rawURL's host is allowed, then records the
// hit. Unparseable URLs share one "unknown" bucket.
func (l *HostLimiter) Wait(rawURL string) {
	if l.interval <= 0 {
		return
	}
	host := hostOf(rawURL)

	l.mu.Lock()
	now := time.Now()
	next := l.lastHit[host].Add(l.interval)
	if next.After(now) {
		l.lastHit[host] = next
		l.mu.Unlock()
		time.Sleep(next.Sub(now))
		return
	}
	l.lastHit[host] = now
	l.mu.Unlock()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return strings.ToLower(strings.TrimPrefix(u.Host, "www."))
}
