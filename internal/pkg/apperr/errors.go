package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrUpstreamService     = errors.New("upstream service error")
	ErrMalformedGeneration = errors.New("malformed generation")
	ErrNotFound            = errors.New("not found")
)

type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func InvalidParameter(format string, args ...any) error {
	return &Error{Kind: ErrInvalidParameter, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Upstream(msg string, err error) error {
	return &Error{Kind: ErrUpstreamService, Msg: msg, Err: err}
}

func Malformed(msg string, err error) error {
	return &Error{Kind: ErrMalformedGeneration, Msg: msg, Err: err}
}

// HTTPStatus maps an error chain onto a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
