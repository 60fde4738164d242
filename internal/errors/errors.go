package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NewValidation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func NewNotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func NewAuthentication(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func NewAuthorization(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func statusCode(err error) (int, bool) {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	code, ok := statusCode(err)
	return ok && code == http.StatusNotFound
}

func IsValidation(err error) bool {
	code, ok := statusCode(err)
	return ok && code == http.StatusBadRequest
}

func IsAuthorization(err error) bool {
	code, ok := statusCode(err)
	return ok && code == http.StatusForbidden
}
