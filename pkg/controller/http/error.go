package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/m-mizutani/agentdesk/pkg/domain/types"
	"github.com/m-mizutani/agentdesk/pkg/domain/types/apperr"
	utilerrors "github.com/m-mizutani/agentdesk/pkg/utils/errors"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// errorResponse is the body of every non-2xx JSON response
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// errorScope describes the endpoint an error came from
type errorScope struct {
	// fallback is reported for failures that have no more specific kind
	fallback string
	agentID  types.AgentID
}

// buildErrorResponse classifies err into a status code and response body
func buildErrorResponse(scope errorScope, err error) (int, *errorResponse) {
	status := apperr.HTTPStatusFromError(err)
	resp := &errorResponse{}

	var fields apperr.FieldErrors
	hasFields := errors.As(err, &fields)

	switch {
	case errors.Is(err, apperr.ErrInvalidAgentID):
		resp.Error = "Invalid agentId"

	case goerr.HasTag(err, apperr.ErrTagRequiredField):
		resp.Error = "Missing required fields"
		if hasFields {
			resp.Details = fields
		}

	case status == http.StatusBadRequest:
		resp.Error = "Invalid payload"
		if hasFields {
			resp.Details = fields
		}

	case errors.Is(err, apperr.ErrAgentNotFound):
		resp.Error = "Agent not found"
		resp.Message = fmt.Sprintf("Agent with id %d does not exist", scope.agentID)

	case errors.Is(err, apperr.ErrVendorNotConfigured):
		resp.Error = "Vendor not configured"

	case status == http.StatusBadGateway, status == http.StatusGatewayTimeout:
		resp.Error = "Vendor request failed"
		resp.Message = err.Error()

	default:
		resp.Error = scope.fallback
		resp.Message = err.Error()
	}

	return status, resp
}

// writeError logs err and writes the JSON error response
func writeError(w http.ResponseWriter, r *http.Request, scope errorScope, err error) {
	if err == nil {
		return
	}

	status, resp := buildErrorResponse(scope, err)

	if status >= http.StatusInternalServerError {
		utilerrors.HandleWith(r.Context(), "request failed", err,
			"status", status,
			"path", r.URL.Path,
			"method", r.Method,
		)
	} else {
		ctxlog.From(r.Context()).Info("request rejected",
			"status", status,
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
	}

	writeJSON(w, r, status, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utilerrors.Handle(r.Context(), goerr.Wrap(err, "failed to encode response",
			goerr.V("status", status)))
	}
}
