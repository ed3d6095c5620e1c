package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 404 Not Found
	case goerr.HasTag(err, ErrTagNotFound),
		goerr.HasTag(err, ErrTagAgentNotFound):
		return http.StatusNotFound

	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagInvalidInput),
		goerr.HasTag(err, ErrTagInvalidFormat),
		goerr.HasTag(err, ErrTagRequiredField):
		return http.StatusBadRequest

	// 504 Gateway Timeout
	case goerr.HasTag(err, ErrTagTimeout):
		return http.StatusGatewayTimeout

	// 502 Bad Gateway
	case goerr.HasTag(err, ErrTagExternal),
		goerr.HasTag(err, ErrTagVendorAPI):
		return http.StatusBadGateway

	// 500 Internal Server Error (default), including persistence and not_implemented
	default:
		return http.StatusInternalServerError
	}
}
