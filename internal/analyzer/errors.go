package analyzer

import (
	"errors"
	"net/http"
)

// Kinds of request failure. Match with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrNoContent      = errors.New("no content")
	ErrUpstreamFetch  = errors.New("upstream fetch error")
	ErrClassification = errors.New("classification error")
)

// Error is a terminal failure of one analysis request. Message is safe to
// show to the user.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// StatusCode maps the error kind onto the HTTP status the user sees.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNoContent:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
