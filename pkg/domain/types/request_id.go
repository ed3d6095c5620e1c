package types

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/agentdesk/pkg/utils/errors"
	"github.com/m-mizutani/goerr/v2"
)

// RequestID identifies a single HTTP request in logs
type RequestID string

// NewRequestID creates a time-ordered RequestID (UUID v7)
func NewRequestID(ctx context.Context) RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to generate uuid V7, fallback to V4"))
		return RequestID(uuid.New().String())
	}

	return RequestID(id.String())
}

// String returns the string representation of RequestID
func (id RequestID) String() string {
	return string(id)
}
