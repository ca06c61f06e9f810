package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a pipeline failure for callers deciding how to react.
type ErrorCode string

const (
	// ErrCodeNetwork means no response was received; the caller may reissue
	// the call as a brand new request.
	ErrCodeNetwork ErrorCode = "NETWORK"
	// ErrCodeUnauthorized marks a rejection by the backend's authorization
	// layer. The dispatcher absorbs the retryable case, so callers only see
	// this code on terminal rejections.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeTerminal covers every other backend rejection (4xx/5xx).
	ErrCodeTerminal ErrorCode = "TERMINAL"
	// ErrCodeSessionTerminated means credential renewal failed and the stored
	// pair was cleared; the user must authenticate again.
	ErrCodeSessionTerminated ErrorCode = "SESSION_TERMINATED"
	// ErrCodeStoreUnavailable reports a keystore medium failure. Never
	// conflated with "logged out".
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	// ErrCodeTimeout marks a bounded wait that expired, e.g. a waiter giving
	// up on a renewal that never settled.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInvalid covers malformed payloads and broken invariants.
	ErrCodeInvalid ErrorCode = "INVALID"
)

// Error is the typed failure surfaced by the request pipeline.
type Error struct {
	Code    ErrorCode
	Message string
	// Status holds the HTTP status of the response that produced the error,
	// zero when no response was involved.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a pipeline classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common pipeline errors.
var (
	ErrNotAuthenticated      = NewError(ErrCodeTerminal, "not authenticated")
	ErrSessionTerminated     = NewError(ErrCodeSessionTerminated, "session terminated")
	ErrRefreshTimeout        = NewError(ErrCodeTimeout, "credential renewal timed out")
	ErrIncompleteCredentials = NewError(ErrCodeInvalid, "credential pair requires both tokens")
)

// IsCode reports whether err carries the given classification.
func IsCode(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
