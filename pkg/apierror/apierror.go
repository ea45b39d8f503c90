package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels let callers classify an error with errors.Is without
// depending on HTTP status codes.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// Error is the structured error every core operation raises. The delivery
// layer translates it into a transport response; the core never writes to a
// response directly.
type Error struct {
	Status  int
	Message string
	kind    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == e.kind
}

// StatusOf returns the HTTP status for err, or 500 when err is not an *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Non-API errors are not
// leaked to clients.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "internal server error"
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, kind: ErrBadRequest}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message, kind: ErrUnauthorized}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message, kind: ErrNotFound}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message, kind: ErrConflict}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, kind: ErrInternal}
}
