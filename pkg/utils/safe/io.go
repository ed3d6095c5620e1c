package safe

import (
	"context"
	"io"

	"github.com/m-mizutani/agentdesk/pkg/utils/errors"
	"github.com/m-mizutani/goerr/v2"
)

// Close closes c and reports a failure through errors.Handle. A nil c is ignored.
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to close resource"))
	}
}
