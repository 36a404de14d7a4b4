// Package apperror holds the closed set of failures surfaced to the user:
// ValidationError (caught before any network call), TransportError (network or
// body decoding failure) and RemoteError (non-2xx answer from the remote API).
package apperror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindTransport
	KindRemote
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error is implemented only by the three error types of this package.
type Error interface {
	error
	Kind() Kind
	UserMessage() string
	sealed()
}

// ValidationError maps a form field to a human readable problem.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Required is a shortcut for a single missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: field + " is required"}}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.UserMessage()
}

func (e *ValidationError) Kind() Kind { return KindValidation }

// UserMessage joins the field messages in field order so the output is stable.
func (e *ValidationError) UserMessage() string {
	if len(e.Fields) == 0 {
		return "Validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) sealed() {}

// TransportError means the request never produced a usable answer.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func NewTransportError(op, message string, err error) *TransportError {
	return &TransportError{Op: op, Message: message, Err: err}
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Kind() Kind { return KindTransport }

func (e *TransportError) UserMessage() string { return e.Message }

func (e *TransportError) sealed() {}

// RemoteError carries the status and the server provided message.
type RemoteError struct {
	Status  int
	Message string
}

func NewRemoteError(status int, message string) *RemoteError {
	return &RemoteError{Status: status, Message: message}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

func (e *RemoteError) Kind() Kind { return KindRemote }

func (e *RemoteError) UserMessage() string { return e.Message }

func (e *RemoteError) sealed() {}

// As returns the Error found in err's chain.
func As(err error) (Error, bool) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation, true
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote, true
	}
	var transport *TransportError
	if errors.As(err, &transport) {
		return transport, true
	}
	return nil, false
}

// UserMessage converts any error into the single string shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := As(err); ok {
		return appErr.UserMessage()
	}
	return "Something went wrong"
}
