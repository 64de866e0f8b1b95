package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthorized is returned when the API answers 401
	ErrNotAuthorized = errors.New("Not Authorized to make this request")
	// ErrServerError matches every *ServerError through errors.Is
	ErrServerError = errors.New("server error")
	// ErrNetworkFailure matches every *NetworkError through errors.Is
	ErrNetworkFailure = errors.New("network failure")
	// ErrValidation matches every *ValidationError through errors.Is
	ErrValidation = errors.New("validation error")

	ErrAbsolutePath           = errors.New("path must be relative to the api base")
	ErrInvalidJsonFormat      = errors.New("invalid JSON format")
	ErrTransportNotConfigured = errors.New("mail transport is not configured")
	ErrBadParamInput          = errors.New("Given Param is not valid")

	// mail validation, one per required field
	ErrMissingFrom       = &ValidationError{Field: "from", Reason: "sendSimple requires a from address"}
	ErrMissingRecipients = &ValidationError{Field: "to", Reason: `sendSimple requires a comma-separated list of "to" addresses`}
	ErrMissingSubject    = &ValidationError{Field: "subject", Reason: "sendSimple requires a subject for the email"}
)

// ServerError is any non-401 status above 399.
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Error! Status %d", e.Status)
}

func (e *ServerError) Is(target error) bool {
	if target == ErrServerError {
		return true
	}
	t, ok := target.(*ServerError)
	return ok && t.Status == e.Status
}

// NetworkError is a transport failure before any status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

// ValidationError names a missing or invalid field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid field %q", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	t, ok := target.(*ValidationError)
	return ok && t.Field == e.Field
}
