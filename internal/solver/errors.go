package solver

import (
	"errors"
	"fmt"
)

// ErrorKind classifies solver failures so callers can decide whether to retry.
type ErrorKind int

const (
	// KindConfiguration marks malformed initialization input.
	KindConfiguration ErrorKind = iota + 1
	// KindInvalidGuess marks a guess outside the allowed-guess set.
	KindInvalidGuess
	// KindInvalidPattern marks a feedback string of the wrong length or alphabet.
	KindInvalidPattern
	// KindExhaustedCandidates marks feedback that eliminated every candidate
	// (or, in hard mode, every allowed guess).
	KindExhaustedCandidates
	// KindFinished marks an update against a Solved or Failed state.
	KindFinished
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindInvalidGuess:
		return "invalid guess"
	case KindInvalidPattern:
		return "invalid pattern"
	case KindExhaustedCandidates:
		return "exhausted candidates"
	case KindFinished:
		return "game finished"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every fallible solver operation.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "solver: " + e.Kind.String()
	}
	return "solver: " + e.Kind.String() + ": " + e.Msg
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrInvalidGuess)
// works regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrConfiguration       = &Error{Kind: KindConfiguration}
	ErrInvalidGuess        = &Error{Kind: KindInvalidGuess}
	ErrInvalidPattern      = &Error{Kind: KindInvalidPattern}
	ErrExhaustedCandidates = &Error{Kind: KindExhaustedCandidates}
	ErrFinished            = &Error{Kind: KindFinished}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a solver error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
