package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ipLimiterEntry: tracks a rate limiter and its last use time
type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimit: manages connection rate limiters per client IP
type IPRateLimit struct {
	limiters map[string]*ipLimiterEntry
	interval time.Duration
	burst    int
	mu       sync.Mutex
}

// NewIPRateLimit: limiter allowing connectsPerMinute new connections
// per IP with the given burst
func NewIPRateLimit(connectsPerMinute, burst int) *IPRateLimit {
	if connectsPerMinute <= 0 {
		connectsPerMinute = 1
	}
	return &IPRateLimit{
		limiters: make(map[string]*ipLimiterEntry),
		interval: time.Minute / time.Duration(connectsPerMinute),
		burst:    burst,
	}
}

// Allow: checks if an IP is allowed to connect
func (iprl *IPRateLimit) Allow(ip string) bool {
	iprl.mu.Lock()
	defer iprl.mu.Unlock()

	entry, exists := iprl.limiters[ip]
	if !exists {
		entry = &ipLimiterEntry{
			limiter:  rate.NewLimiter(rate.Every(iprl.interval), iprl.burst),
			lastSeen: time.Now(),
		}
		iprl.limiters[ip] = entry
	} else {
		entry.lastSeen = time.Now()
	}

	return entry.limiter.Allow()
}

// Cleanup: removes IP limiters that haven't been used recently
func (iprl *IPRateLimit) Cleanup() {
	iprl.mu.Lock()
	defer iprl.mu.Unlock()

	now := time.Now()
	threshold := 1 * time.Hour

	for ip, entry := range iprl.limiters {
		if now.Sub(entry.lastSeen) > threshold {
			delete(iprl.limiters, ip)
		}
	}
}
