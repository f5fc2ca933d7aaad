package strategy

import (
	"context"
	"errors"
	"fmt"
)

// Strategy resolves English text into Korean.
type Strategy interface {
	// Name returns the human readable strategy name.
	Name() string

	// Priority orders strategies; lower values are tried first.
	Priority() int

	// CanHandle reports whether the strategy is currently able to take text.
	CanHandle(text string) bool

	// Translate returns the translation of text. A result equal to text
	// means no translation was produced.
	Translate(ctx context.Context, text string) (string, error)
}

// Remote is implemented by strategies that call out of the process.
type Remote interface {
	Strategy
	RequestCount() int
	ResetRequestCount()
}

var (
	// ErrNoChange is returned when a service echoed the input back.
	ErrNoChange = errors.New("translation unchanged")

	// ErrInvalidTranslation is returned when a service answered with text
	// that does not look like a Korean translation.
	ErrInvalidTranslation = errors.New("invalid translation")

	// ErrDailyLimit is returned when the 24 hour request quota is used up.
	ErrDailyLimit = errors.New("daily request limit reached")

	// ErrTooLong is returned for text above the strategy's length cap.
	ErrTooLong = errors.New("text too long")

	// ErrNotConfigured is returned by API key backed strategies without a key.
	ErrNotConfigured = errors.New("strategy not configured")

	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// StatusError reports a non-success status from a translation service.
type StatusError struct {
	Strategy string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d from %s", e.Code, e.Strategy)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
