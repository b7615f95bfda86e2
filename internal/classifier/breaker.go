package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/nadzzz/shopvoice/internal/message"
)

// BreakerSettings configures the circuit breaker around a remote backend.
type BreakerSettings struct {
	MaxRequests  uint32        // requests allowed while half-open
	Interval     time.Duration // window after which closed-state counts reset
	Timeout      time.Duration // open state duration before probing again
	MinRequests  uint32        // requests in the window before the ratio is checked
	FailureRatio float64
}

// WithBreaker wraps c so that repeated failures open a circuit and fail fast
// with ErrUnavailable until the backend recovers.
func WithBreaker(c Classifier, s BreakerSettings) Classifier {
	if s.MinRequests == 0 {
		s.MinRequests = 3
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = 0.6
	}
	name := c.Name()
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "classifier-" + name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("classifier circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return &breaker{next: c, cb: cb}
}

type breaker struct {
	next Classifier
	cb   *gobreaker.CircuitBreaker
}

func (b *breaker) Name() string { return b.next.Name() }

func (b *breaker) Classify(ctx context.Context, lang, text string) (message.Classification, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Classify(ctx, lang, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return message.Classification{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, b.next.Name(), err)
	}
	if err != nil {
		return message.Classification{}, err
	}
	return res.(message.Classification), nil
}

func (b *breaker) Close() error { return b.next.Close() }

// State reports the breaker state of c, or "none" when c has no breaker.
func State(c Classifier) string {
	if b, ok := c.(*breaker); ok {
		return b.cb.State().String()
	}
	return "none"
}
