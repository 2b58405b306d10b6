// Package ratelimit implements a fixed-window request counter keyed by a
// client identifier. It is a soft UX throttle: the identifier is
// self-reported, so this is not an abuse-protection boundary.
package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultMaxRequests = 100
	DefaultWindow      = 15 * time.Minute
)

type window struct {
	count     int
	resetTime time.Time
}

type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	windowSize  time.Duration
	requests    map[string]*window
}

func NewLimiter(maxRequests int, windowSize time.Duration) *Limiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &Limiter{
		maxRequests: maxRequests,
		windowSize:  windowSize,
		requests:    make(map[string]*window),
	}
}

// IsAllowed records a request attempt for the identifier and reports whether
// it fits in the current window. The first request for an identifier, or any
// request after the window elapsed, starts a fresh window.
func (l *Limiter) IsAllowed(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.requests[identifier]
	if !ok || now.After(w.resetTime) {
		l.requests[identifier] = &window{count: 1, resetTime: now.Add(l.windowSize)}
		return true
	}

	if w.count >= l.maxRequests {
		return false
	}

	w.count++
	return true
}

// Remaining reports how many requests the identifier has left in its window
// without recording an attempt.
func (l *Limiter) Remaining(identifier string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.requests[identifier]
	if !ok || time.Now().After(w.resetTime) {
		return l.maxRequests
	}

	remaining := l.maxRequests - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset drops all recorded windows.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = make(map[string]*window)
}
