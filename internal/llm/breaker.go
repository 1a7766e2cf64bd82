package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

var _ Provider = (*Breaker)(nil)

// BreakerConfig configures the circuit breaker around a provider
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the breaker settings used by the server
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "text-generation",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Breaker stops calling a failing provider until it recovers. An open
// breaker fails fast with ErrCodeUnavailable.
type Breaker struct {
	next Provider
	cb   *gobreaker.CircuitBreaker[*Response]
}

// NewBreaker wraps next with a circuit breaker
func NewBreaker(next Provider, cfg BreakerConfig) *Breaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// Malformed requests say nothing about provider health
		IsSuccessful: func(err error) bool {
			return err == nil || isCallerError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Text generation circuit breaker changed state",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Breaker{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[*Response](settings),
	}
}

// State returns the breaker state for monitoring
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Generate creates a completion from a single prompt
func (b *Breaker) Generate(ctx context.Context, prompt string, opts ...CallOption) (*Response, error) {
	return b.execute(func() (*Response, error) {
		return b.next.Generate(ctx, prompt, opts...)
	})
}

// Chat creates a completion from a conversation history
func (b *Breaker) Chat(ctx context.Context, messages []Message, opts ...CallOption) (*Response, error) {
	return b.execute(func() (*Response, error) {
		return b.next.Chat(ctx, messages, opts...)
	})
}

func (b *Breaker) execute(fn func() (*Response, error)) (*Response, error) {
	resp, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, NewProviderError(ErrCodeUnavailable, "text generation temporarily disabled", err)
	}
	return resp, err
}
