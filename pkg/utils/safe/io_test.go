package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/agentdesk/pkg/utils/safe"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose(t *testing.T) {
	t.Run("closes the resource", func(t *testing.T) {
		closed := false
		safe.Close(context.Background(), closerFunc(func() error {
			closed = true
			return nil
		}))
		gt.True(t, closed)
	})

	t.Run("logs close failure", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := ctxlog.With(context.Background(), logger)

		safe.Close(ctx, closerFunc(func() error {
			return errors.New("connection reset")
		}))
		gt.True(t, strings.Contains(buf.String(), "connection reset"))
	})

	t.Run("ignores nil closer", func(t *testing.T) {
		safe.Close(context.Background(), nil)
	})
}
