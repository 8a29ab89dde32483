// errors.go - Typed errors returned by the services

package service // Declares the package name

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure for the HTTP layer.
type Kind int

const (
	KindInfrastructure Kind = iota // Store, disk or hashing failure
	KindNotFound                   // Lookup missed
	KindConflict                   // Unique value already taken
	KindInvalid                    // Input rejected
	KindUnauthorized               // Credentials did not match
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "infrastructure"
	}
}

// Error carries a client-facing Message and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// infraError wraps an unexpected failure; the message shown to clients is generic.
func infraError(err error) *Error {
	return newError(KindInfrastructure, "Internal Server Error", err)
}

// KindOf returns the Kind of err, treating foreign errors as infrastructure failures.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInfrastructure
}
