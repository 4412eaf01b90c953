// Package ratelimit throttles sign-in attempts. Login is the only endpoint
// here worth brute-forcing (everything else needs a session already), so the
// limiter tracks two sliding windows: per client IP to slow a single source,
// and per account email so a distributed guess against one account still
// trips the limit.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/helpbridge/helpbridge-web/internal/app/system/normalize"
)

// Limiter counts events per key in fixed-duration sliding windows.
// Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	cleanup  time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit events per key per duration.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2,
	}
	go l.cleanupLoop()
	return l
}

// Allow records one event for key and reports whether it stayed within
// the window's limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]

	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{
			count:     1,
			expiresAt: now.Add(l.duration),
		}
		return true
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// Remaining returns how many events key has left in its current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]

	if !exists || now.After(w.expiresAt) {
		return l.limit
	}

	remaining := l.limit - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the window for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, w := range l.windows {
			if now.After(w.expiresAt) {
				delete(l.windows, key)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the client IP from a request, preferring the
// X-Forwarded-For and X-Real-IP headers set by a fronting proxy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			ip := strings.TrimSpace(parts[0])
			if ip != "" {
				return ip
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// Default login limits, used for any LoginLimits field left zero.
const (
	DefaultIPLimit     = 10
	DefaultIPWindow    = time.Minute
	DefaultEmailLimit  = 5
	DefaultEmailWindow = 5 * time.Minute
)

// LoginLimits configures the sign-in limiter. Zero fields keep the
// defaults, so LoginLimits{} gives the stock protection and deployments
// can loosen or tighten individual knobs through app config.
type LoginLimits struct {
	IPLimit     int
	IPWindow    time.Duration
	EmailLimit  int
	EmailWindow time.Duration
}

// LoginLimiter throttles sign-in attempts per client IP and per account.
type LoginLimiter struct {
	ipLimiter    *Limiter
	emailLimiter *Limiter
}

// NewLoginLimiter builds a login limiter from limits, filling zero fields
// with the defaults.
func NewLoginLimiter(limits LoginLimits) *LoginLimiter {
	if limits.IPLimit <= 0 {
		limits.IPLimit = DefaultIPLimit
	}
	if limits.IPWindow <= 0 {
		limits.IPWindow = DefaultIPWindow
	}
	if limits.EmailLimit <= 0 {
		limits.EmailLimit = DefaultEmailLimit
	}
	if limits.EmailWindow <= 0 {
		limits.EmailWindow = DefaultEmailWindow
	}
	return &LoginLimiter{
		ipLimiter:    New(limits.IPLimit, limits.IPWindow),
		emailLimiter: New(limits.EmailLimit, limits.EmailWindow),
	}
}

// Check records a sign-in attempt and reports whether it may proceed,
// with a user-facing reason when it may not.
func (ll *LoginLimiter) Check(r *http.Request, email string) (bool, string) {
	if !ll.ipLimiter.Allow(ClientIP(r)) {
		return false, "Too many login attempts. Please wait a minute before trying again."
	}

	if email != "" {
		if !ll.emailLimiter.Allow(normalize.Email(email)) {
			return false, "Too many login attempts for this account. Please wait a few minutes."
		}
	}

	return true, ""
}

// ResetEmail clears the account window after a successful sign-in.
func (ll *LoginLimiter) ResetEmail(email string) {
	if email != "" {
		ll.emailLimiter.Reset(normalize.Email(email))
	}
}
