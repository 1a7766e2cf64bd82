// Package grpc provides gRPC server implementation
package grpc

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc/metadata"
)

// ClientIDHeader is the metadata key identifying a calling client
const ClientIDHeader = "x-client-id"

// RateLimiter implements per-client rate limiting over fixed one-minute windows
type RateLimiter struct {
	mu              sync.Mutex
	limitPerMinute  int
	clients         map[string]*clientCounter
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

type clientCounter struct {
	count     int
	windowEnd time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(limitPerMinute int) *RateLimiter {
	if limitPerMinute <= 0 {
		limitPerMinute = 120
	}

	rl := &RateLimiter{
		limitPerMinute:  limitPerMinute,
		clients:         make(map[string]*clientCounter),
		cleanupInterval: 5 * time.Minute,
		done:            make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Allow checks if a request from the given client is allowed. Anonymous
// callers share a single bucket.
func (rl *RateLimiter) Allow(clientID string) bool {
	if clientID == "" {
		clientID = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	counter, exists := rl.clients[clientID]

	if !exists || now.After(counter.windowEnd) {
		rl.clients[clientID] = &clientCounter{
			count:     1,
			windowEnd: now.Add(time.Minute),
		}
		return true
	}

	if counter.count >= rl.limitPerMinute {
		return false
	}

	counter.count++
	return true
}

// Close stops the cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.done) })
}

// cleanup removes stale entries periodically
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for id, counter := range rl.clients {
				if now.After(counter.windowEnd.Add(time.Minute)) {
					delete(rl.clients, id)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// extractClientID extracts the client ID from gRPC metadata
func extractClientID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(ClientIDHeader)
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
