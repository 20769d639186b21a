package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies failures the way callers recover from them:
// re-authenticate, retry the action, or fix the input.
type Kind int

const (
	KindAuth Kind = iota + 1
	KindNetwork
	KindValidation
)

// Error is the typed failure returned by services and adapters.
// The wrapped cause (if any) is reachable via errors.Unwrap.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Auth reports an authentication failure (bad credentials, duplicate registration).
func Auth(msg string) *Error { return &Error{Kind: KindAuth, Msg: msg} }

// Network reports a transport-level failure, wrapping the underlying cause.
func Network(msg string, err error) *Error { return &Error{Kind: KindNetwork, Msg: msg, Err: err} }

// Validation reports malformed or out-of-range input.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsAuth(err error) bool       { return is(err, KindAuth) }
func IsNetwork(err error) bool    { return is(err, KindNetwork) }
func IsValidation(err error) bool { return is(err, KindValidation) }
