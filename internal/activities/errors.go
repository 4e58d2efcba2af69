package activities

import (
	"errors"
	"net/http"
)

// Domain errors for registry operations.
var (
	ErrNotFound      = errors.New("Activity not found")
	ErrConflict      = errors.New("participant conflict")
	ErrEmailRequired = errors.New("email query parameter is required")

	// ErrAlreadySignedUp and ErrNotSignedUp are both ErrConflict.
	ErrAlreadySignedUp error = &conflictError{msg: "already signed up"}
	ErrNotSignedUp     error = &conflictError{msg: "not signed up"}
)

type conflictError struct {
	msg string
}

func (e *conflictError) Error() string {
	return e.msg
}

func (e *conflictError) Is(target error) bool {
	return target == ErrConflict
}

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrEmailRequired) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
