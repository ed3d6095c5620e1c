package apperr

import "github.com/m-mizutani/goerr/v2"

// NotFound errors (HTTP 404)
var (
	ErrTagNotFound      = goerr.NewTag("not_found")
	ErrTagAgentNotFound = goerr.NewTag("agent_not_found")
)

// Validation errors (HTTP 400)
var (
	ErrTagValidation    = goerr.NewTag("validation")
	ErrTagInvalidInput  = goerr.NewTag("invalid_input")
	ErrTagInvalidFormat = goerr.NewTag("invalid_format")
	ErrTagRequiredField = goerr.NewTag("required_field")
)

// External service errors (HTTP 502)
var (
	ErrTagExternal  = goerr.NewTag("external")
	ErrTagVendorAPI = goerr.NewTag("vendor_api")
)

// System errors (HTTP 500/504)
var (
	ErrTagInternal       = goerr.NewTag("internal")
	ErrTagPersistence    = goerr.NewTag("persistence")
	ErrTagTimeout        = goerr.NewTag("timeout")
	ErrTagNotImplemented = goerr.NewTag("not_implemented")
)
