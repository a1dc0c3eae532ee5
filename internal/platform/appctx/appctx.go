// Package appctx carries request-scoped values through context: the
// structured logger and the injected current user. Using custom key types
// prevents collisions.
package appctx

import (
	"context"
	"log/slog"

	"github.com/arale275/autix-sub001/internal/core/domain"
)

type contextKey string

const (
	loggerKey = contextKey("logger")
	userKey   = contextKey("user")
)

// WithLogger returns a context holding an action-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger retrieves the scoped logger, falling back to slog.Default.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithUser returns a context holding the current user identity.
func WithUser(ctx context.Context, user domain.UserRef) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// User retrieves the current user. The boolean reports whether an identity
// was injected.
func User(ctx context.Context) (domain.UserRef, bool) {
	user, ok := ctx.Value(userKey).(domain.UserRef)
	return user, ok
}
