package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation        = errors.New("missing or invalid request parameters")
	ErrTimeout           = errors.New("request timed out, please try again")
	ErrConnection        = errors.New("failed to connect to name generation service")
	ErrMalformedUpstream = errors.New("error parsing the name generation response")
)

// UpstreamError is a non-2xx answer from the name generation service.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

const (
	ErrorKindValidation        = "validation"
	ErrorKindTimeout           = "timeout"
	ErrorKindConnection        = "connection"
	ErrorKindUpstream          = "upstream"
	ErrorKindMalformedUpstream = "malformed_upstream"
	ErrorKindInternal          = "internal"
)

// ErrorKind classifies err into one of the ErrorKind* values.
func ErrorKind(err error) string {
	var upstreamErr *UpstreamError
	switch {
	case errors.Is(err, ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, ErrTimeout):
		return ErrorKindTimeout
	case errors.Is(err, ErrConnection):
		return ErrorKindConnection
	case errors.As(err, &upstreamErr):
		return ErrorKindUpstream
	case errors.Is(err, ErrMalformedUpstream):
		return ErrorKindMalformedUpstream
	default:
		return ErrorKindInternal
	}
}

// User-facing texts for errors whose Error() carries operational detail.
const (
	MessageTimeout           = "Request timed out. Please try again."
	MessageConnection        = "Failed to connect to name generation service"
	MessageMalformedUpstream = "There was an error parsing the API response."
	MessageInternal          = "Failed to process request"
)

// Message returns the text shown to the UI for err. Validation and upstream
// status errors are already user-facing and are returned as is.
func Message(err error) string {
	var upstreamErr *UpstreamError
	switch {
	case errors.Is(err, ErrValidation):
		return err.Error()
	case errors.Is(err, ErrTimeout):
		return MessageTimeout
	case errors.Is(err, ErrConnection):
		return MessageConnection
	case errors.As(err, &upstreamErr):
		return upstreamErr.Error()
	case errors.Is(err, ErrMalformedUpstream):
		return MessageMalformedUpstream
	default:
		return MessageInternal
	}
}

// StatusCode maps err to the HTTP status returned to the UI. Upstream
// statuses are passed through verbatim.
func StatusCode(err error) int {
	var upstreamErr *UpstreamError
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusRequestTimeout
	case errors.As(err, &upstreamErr):
		return upstreamErr.StatusCode
	case errors.Is(err, ErrMalformedUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
