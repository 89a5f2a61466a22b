package client

import (
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Kind classifies an APIError by where it originated.
type Kind string

const (
	// KindTransport: the request never got a response.
	KindTransport Kind = "transport"
	// KindHTTPStatus: the backend answered with a non-2xx status.
	KindHTTPStatus Kind = "http_status"
	// KindDecode: a 2xx response whose body could not be decoded.
	KindDecode Kind = "decode"
	// KindValidation: rejected client-side before any network call.
	KindValidation Kind = "validation"
)

const (
	msgUnexpected = "An unexpected error occurred"
	msgTimeout    = "request timed out"
	msgBadBody    = "unexpected response from server"
)

// APIError is the single failure type surfaced by the request layer. Error
// returns only the human-readable Message; Err keeps the underlying cause
// for logs and errors.Unwrap.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e == nil || e.Message == "" {
		return msgUnexpected
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// Is lets callers match APIErrors against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		if e.Kind == KindTransport {
			return true
		}
		switch e.Status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

// NewValidationError wraps a client-side validation failure.
func NewValidationError(err error) *APIError {
	return &APIError{Kind: KindValidation, Message: err.Error(), Err: err}
}

// AsAPIError extracts the APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
