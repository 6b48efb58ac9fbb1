package decl

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrInvalidName    = errors.New("invalid name")
	ErrNilType        = errors.New("field has no type")
	ErrNoSuchField    = errors.New("no such field")
	ErrInactiveField  = errors.New("field is not active")
	ErrFieldType      = errors.New("value type does not match field")
)

// Error reports a declaration or access failure. It matches its sentinel
// with errors.Is.
type Error struct {
	Decl  string
	Field string
	Err   error
	// Detail is an optional free-form suffix.
	Detail string
}

func (e *Error) Error() string {
	msg := e.Decl
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg = fmt.Sprintf("%s: %v", msg, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
