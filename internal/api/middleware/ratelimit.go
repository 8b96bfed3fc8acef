package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple in-memory fixed-window rate limiter.
// Authenticated callers are limited per actor, anonymous callers per IP.
// A single appview instance is the deployment target; a multi-instance
// deployment would need a shared limiter.
type RateLimiter struct {
	clients  map[string]*clientWindow
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientWindow struct {
	resetTime time.Time
	count     int
}

// NewRateLimiter creates a limiter allowing `requests` per `window`.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Middleware returns the rate limiting middleware. Mount it after the auth
// middleware so authenticated traffic is keyed by actor rather than IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := GetActorID(r)
		if key == "" {
			key = clientIP(r)
		}

		if !rl.allow(key) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()
	cw, ok := rl.clients[key]
	if !ok || now.After(cw.resetTime) {
		rl.clients[key] = &clientWindow{resetTime: now.Add(rl.window), count: 1}
		return true
	}
	if cw.count >= rl.requests {
		return false
	}
	cw.count++
	return true
}

// cleanup drops expired windows so the map does not grow unbounded.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now().UTC()
		rl.mu.Lock()
		for key, cw := range rl.clients {
			if now.After(cw.resetTime) {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
