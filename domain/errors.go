package domain

import (
	"errors"
	"fmt"
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// OTP errors. Wrong code and aged-out code are deliberately one error so
// callers cannot tell which case occurred.
var (
	ErrOTPInvalidOrExpired = errors.New("otp is invalid or expired")
)

// Token cache errors
var (
	ErrNoActiveToken = errors.New("no valid token found")
)

// ValidationError reports malformed or missing input with a message safe
// to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ConflictError reports a uniqueness violation at registration.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// GatewayError reports a transport-level failure reaching the token
// provider. Remote HTTP errors are not GatewayErrors; those travel back
// as a TokenReply with the remote status.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("token gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
