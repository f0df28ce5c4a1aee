package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Error carries a client facing message and matches its kind with errors.Is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

// NotFound reports a referenced entity that does not exist, e.g. NotFound("book").
func NotFound(entity string) error {
	return &Error{kind: ErrNotFound, msg: entity + " not found"}
}

// Conflict reports a uniqueness or state precondition violation.
func Conflict(msg string) error {
	return &Error{kind: ErrConflict, msg: msg}
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
