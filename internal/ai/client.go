// Package ai isolates every call to external AI services behind a narrow
// interface. Calls are single-shot: no retries, no streaming, and a typed
// failure when the provider is unreachable. The rest of the codebase never
// talks to a provider API directly.
package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the disabled client when no provider is
// configured; callers decide whether to fall back or fail.
var ErrDisabled = errors.New("ai features are disabled")

// Client is the external AI collaborator. GenerateNarrative turns an
// analysis prompt into free-form insight text; Chat answers a user's
// conversational message.
type Client interface {
	GenerateNarrative(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, userID, message string) (string, error)
}

// Disabled is the Client used when no API key is configured. Every call
// fails with ErrDisabled.
type Disabled struct{}

func (Disabled) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Chat(ctx context.Context, userID, message string) (string, error) {
	return "", ErrDisabled
}
