package framework

import (
	"errors"
	"fmt"
)

// Kind is the discriminant used to match a failing test's error against the
// kinds the test expects. Its string is the display name used in reports.
type Kind string

const (
	KindError         Kind = "Error"
	KindAssertFailure Kind = "AssertFailure"
	KindRange         Kind = "RangeError"
	KindType          Kind = "TypeError"
)

func (k Kind) String() string { return string(k) }

// KindedError is implemented by errors that carry their own Kind.
type KindedError interface {
	error
	Kind() Kind
}

// Error is a plain error value tagged with a Kind.
type Error struct {
	kind    Kind
	message string
}

// Raise returns an error of the given kind. A test body returns (or panics
// with) such an error to signal a specific kind of failure.
func Raise(kind Kind, message string) error {
	return &Error{kind: kind, message: message}
}

// Raisef is like Raise but formats the message.
func Raisef(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.message }

func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the kind of the first error in err's chain that carries one.
// Errors that carry no kind are of KindError. A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k KindedError
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindError
}
