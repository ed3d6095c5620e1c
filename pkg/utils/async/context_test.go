package async_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/agentdesk/pkg/utils/async"
	"github.com/m-mizutani/gt"
)

func TestWithSyncMode(t *testing.T) {
	t.Run("runs handler on the calling goroutine", func(t *testing.T) {
		ctx := async.WithSyncMode(context.Background())

		var seen context.Context
		async.Dispatch(ctx, func(ctx context.Context) error {
			seen = ctx
			return nil
		})

		gt.True(t, seen == ctx)
	})

	t.Run("without sync mode handler gets a detached context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		release := make(chan struct{})
		result := make(chan error, 1)

		async.Dispatch(ctx, func(ctx context.Context) error {
			<-release
			result <- ctx.Err()
			return nil
		})

		cancel()
		close(release)
		gt.NoError(t, <-result)
	})
}
