package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithElementID creates a child logger with an element_id field
func WithElementID(ctx context.Context, elementID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("element_id", elementID).Logger()
	return WithContext(ctx, childLogger)
}

// WithSession creates a child logger with a trace session field
func WithSession(ctx context.Context, session string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("session", session).Logger()
	return WithContext(ctx, childLogger)
}
