package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc/metadata"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3)
	defer rl.Close()

	for i := 0; i < 3; i++ {
		if !rl.Allow("client-a") {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}
	if rl.Allow("client-a") {
		t.Error("Fourth request should be denied")
	}
	if !rl.Allow("client-b") {
		t.Error("Separate client should have its own window")
	}
}

func TestRateLimiterAnonymousShareBucket(t *testing.T) {
	rl := NewRateLimiter(1)
	defer rl.Close()

	if !rl.Allow("") {
		t.Fatal("First anonymous request should be allowed")
	}
	if rl.Allow("") {
		t.Error("Anonymous callers should share one bucket")
	}
}

func TestRateLimiterDefaultLimit(t *testing.T) {
	rl := NewRateLimiter(0)
	defer rl.Close()
	rl.Close()

	if rl.limitPerMinute != 120 {
		t.Errorf("Expected default limit 120, got %d", rl.limitPerMinute)
	}
}

func TestExtractClientID(t *testing.T) {
	if got := extractClientID(context.Background()); got != "" {
		t.Errorf("Expected empty id without metadata, got %q", got)
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(ClientIDHeader, "cli"))
	if got := extractClientID(ctx); got != "cli" {
		t.Errorf("Expected 'cli', got %q", got)
	}
}
