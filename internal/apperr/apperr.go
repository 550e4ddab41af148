package apperr

import (
	"errors"
	"net/http"
)

type Code string

const (
	CodeInvalid    Code = "invalid"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeForbidden  Code = "forbidden"
	CodeIncomplete Code = "incomplete_attempt"
	CodeInternal   Code = "internal"
)

// Error is the service-layer error carried up to the controllers, which map
// Code to an HTTP status. Details holds extra machine readable context.
type Error struct {
	Code    Code
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func Invalid(msg string) error   { return &Error{Code: CodeInvalid, Message: msg} }
func NotFound(msg string) error  { return &Error{Code: CodeNotFound, Message: msg} }
func Conflict(msg string) error  { return &Error{Code: CodeConflict, Message: msg} }
func Forbidden(msg string) error { return &Error{Code: CodeForbidden, Message: msg} }

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return CodeInternal
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalid:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeForbidden:
		return http.StatusForbidden
	case CodeIncomplete:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
