package errors

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs errors with context
func Handle(ctx context.Context, err error) {
	HandleWith(ctx, "error occurred", err)
}

// HandleWith logs err under msg together with additional slog key-value pairs
func HandleWith(ctx context.Context, msg string, err error, args ...any) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	logger.Error(msg, append([]any{"error", err}, args...)...)
}
