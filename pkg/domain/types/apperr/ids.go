package apperr

import "github.com/m-mizutani/goerr/v2"

// Agent related errors
var (
	ErrAgentNotFound = goerr.New("agent not found",
		goerr.T(ErrTagAgentNotFound)).ID("ERR_AGENT_NOT_FOUND")

	ErrInvalidAgentID = goerr.New("invalid agent ID",
		goerr.T(ErrTagValidation)).ID("ERR_INVALID_AGENT_ID")

	ErrInvalidPayload = goerr.New("invalid payload",
		goerr.T(ErrTagInvalidInput)).ID("ERR_INVALID_PAYLOAD")
)

// Persistence related errors
var (
	ErrPersistence = goerr.New("persistence operation failed",
		goerr.T(ErrTagPersistence)).ID("ERR_PERSISTENCE")

	ErrUnknownBackend = goerr.New("unknown database backend",
		goerr.T(ErrTagValidation)).ID("ERR_UNKNOWN_BACKEND")
)

// Vendor related errors
var (
	ErrVendorAPI = goerr.New("vendor API call failed",
		goerr.T(ErrTagVendorAPI)).ID("ERR_VENDOR_API_FAILED")

	ErrVendorTimeout = goerr.New("vendor API call timed out",
		goerr.T(ErrTagTimeout)).ID("ERR_VENDOR_TIMEOUT")

	ErrVendorNotConfigured = goerr.New("vendor client not configured",
		goerr.T(ErrTagInternal)).ID("ERR_VENDOR_NOT_CONFIGURED")
)

// ErrNotImplemented marks behavior that is intentionally unfinished
var ErrNotImplemented = goerr.New("not implemented yet",
	goerr.T(ErrTagNotImplemented)).ID("ERR_NOT_IMPLEMENTED")
