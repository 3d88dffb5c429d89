package shared

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// clientWindow tracks one client's request count inside the current
// fixed window.
type clientWindow struct {
	windowStart time.Time
	count       int
}

// FixedWindowRateLimiter implements thread-safe advisory rate limiting
// keyed by client identifier. Each client gets a request budget per
// fixed window; expired windows are evicted by a periodic sweep.
type FixedWindowRateLimiter struct {
	requestsPerWindow int
	window            time.Duration
	clients           map[string]*clientWindow
	mutex             sync.Mutex
	rejectedCount     int64
	allowedCount      int64
	now               func() time.Time // injectable for tests
}

// NewFixedWindowRateLimiter creates a rate limiter with the given
// per-client budget and window length.
func NewFixedWindowRateLimiter(requestsPerWindow int, window time.Duration) *FixedWindowRateLimiter {
	if requestsPerWindow <= 0 {
		requestsPerWindow = 120
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowRateLimiter{
		requestsPerWindow: requestsPerWindow,
		window:            window,
		clients:           make(map[string]*clientWindow),
		now:               time.Now,
	}
}

// Allow records a request for clientID and reports whether it fits in
// the client's current window.
func (limiter *FixedWindowRateLimiter) Allow(clientID string) bool {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	now := limiter.now()
	cw, exists := limiter.clients[clientID]
	if !exists || now.Sub(cw.windowStart) >= limiter.window {
		limiter.clients[clientID] = &clientWindow{windowStart: now, count: 1}
		limiter.allowedCount++
		return true
	}

	if cw.count >= limiter.requestsPerWindow {
		limiter.rejectedCount++

		logrus.WithFields(logrus.Fields{
			"component":    "FixedWindowRateLimiter",
			"client_id":    clientID,
			"window_start": cw.windowStart,
			"count":        cw.count,
			"budget":       limiter.requestsPerWindow,
		}).Debug("Rate limit exceeded for client")

		return false
	}

	cw.count++
	limiter.allowedCount++
	return true
}

// Sweep evicts clients whose window has expired and returns the number
// of evicted entries.
func (limiter *FixedWindowRateLimiter) Sweep() int {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	now := limiter.now()
	evicted := 0
	for clientID, cw := range limiter.clients {
		if now.Sub(cw.windowStart) >= limiter.window {
			delete(limiter.clients, clientID)
			evicted++
		}
	}

	if evicted > 0 {
		logrus.WithFields(logrus.Fields{
			"component": "FixedWindowRateLimiter",
			"evicted":   evicted,
			"tracked":   len(limiter.clients),
		}).Debug("Swept expired rate limiter windows")
	}

	return evicted
}

// Stats returns a snapshot of the limiter's counters for the admin
// surface.
func (limiter *FixedWindowRateLimiter) Stats() map[string]interface{} {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	return map[string]interface{}{
		"tracked_clients":     len(limiter.clients),
		"allowed_requests":    limiter.allowedCount,
		"rejected_requests":   limiter.rejectedCount,
		"requests_per_window": limiter.requestsPerWindow,
		"window":              limiter.window.String(),
	}
}

// Reset clears all tracked windows and counters.
func (limiter *FixedWindowRateLimiter) Reset() {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()

	limiter.clients = make(map[string]*clientWindow)
	limiter.allowedCount = 0
	limiter.rejectedCount = 0

	logrus.WithField("component", "FixedWindowRateLimiter").Debug("Reset rate limiter state")
}
