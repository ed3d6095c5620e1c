package async

import "context"

type syncModeCtxKey struct{}

// WithSyncMode makes Dispatch run handlers inline on the calling goroutine.
// Tests use it to observe background work such as vendor mirroring deterministically.
func WithSyncMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, syncModeCtxKey{}, true)
}

func isSyncMode(ctx context.Context) bool {
	enabled, _ := ctx.Value(syncModeCtxKey{}).(bool)
	return enabled
}
