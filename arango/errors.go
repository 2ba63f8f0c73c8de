package arango

import (
	"errors"
	"fmt"
)

// HTTP status labels as ArangoDB names them. 600 and 601 are Arango
// specific pseudo-statuses for corrupt JSON payloads and superfluous
// URL suffices.
var statusLabels = map[int]string{
	400: "ERROR_HTTP_BAD_PARAMETER",
	401: "ERROR_HTTP_UNAUTHORIZED",
	403: "ERROR_HTTP_FORBIDDEN",
	404: "ERROR_HTTP_NOT_FOUND",
	405: "ERROR_HTTP_METHOD_NOT_ALLOWED",
	406: "ERROR_HTTP_NOT_ACCEPTABLE",
	409: "ERROR_HTTP_CONFLICT",
	412: "ERROR_HTTP_PRECONDITION_FAILED",
	500: "ERROR_HTTP_SERVER_ERROR",
	503: "ERROR_HTTP_SERVICE_UNAVAILABLE",
	504: "ERROR_HTTP_GATEWAY_TIMEOUT",
	600: "ERROR_HTTP_CORRUPTED_JSON",
	601: "ERROR_HTTP_SUPERFLUOUS_SUFFICES",
}

// HTTPError is a failure reported by the ArangoDB HTTP API. It carries
// the HTTP status, the Arango error number and the server message
// unchanged; callers decide what to do with each category, this
// package never retries or suppresses one.
type HTTPError struct {
	// Status is the HTTP status code, or one of ArangoDB's 6xx
	// pseudo-statuses.
	Status int
	// ErrorNum is ArangoDB's own error number, when present.
	ErrorNum int
	// Message is the server-provided error message, when present.
	Message string
}

func (e *HTTPError) Error() string {
	label, ok := statusLabels[e.Status]
	if !ok {
		label = "ERROR_HTTP_UNKNOWN"
	}
	if e.Message == "" {
		return fmt.Sprintf("%d - %s", e.Status, label)
	}
	return fmt.Sprintf("%d - %s: %s", e.Status, label, e.Message)
}

func httpError(status, errorNum int, message string) *HTTPError {
	return &HTTPError{Status: status, ErrorNum: errorNum, Message: message}
}

func hasStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == status
}

// IsNotFound reports whether the error is a 404 from the server.
func IsNotFound(err error) bool { return hasStatus(err, 404) }

// IsConflict reports whether the error is a 409 from the server.
func IsConflict(err error) bool { return hasStatus(err, 409) }

// IsBadParameter reports whether the error is a 400 from the server.
func IsBadParameter(err error) bool { return hasStatus(err, 400) }

// IsUnauthorized reports whether the error is a 401 from the server.
func IsUnauthorized(err error) bool { return hasStatus(err, 401) }

// IsForbidden reports whether the error is a 403 from the server.
func IsForbidden(err error) bool { return hasStatus(err, 403) }

// IsServiceUnavailable reports whether the error is a 503 from the
// server.
func IsServiceUnavailable(err error) bool { return hasStatus(err, 503) }
