// Package errors defines the integration's error taxonomy. Every fatal
// per-record condition maps to one of four kinds; the trigger and batch
// boundaries are the only places that convert them into logged-and-skipped
// outcomes.
package errors

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an error for the boundary layers.
type Kind string

const (
	// KindTransport covers network and timeout failures.
	KindTransport Kind = "transport"
	// KindAuthentication covers missing or invalid credentials and
	// exhausted grant exchanges. Always fatal for the current record.
	KindAuthentication Kind = "authentication"
	// KindRemoteAPI covers non-2xx responses surviving the retry budget.
	KindRemoteAPI Kind = "remote_api"
	// KindDataIntegrity covers ambiguous user matches and malformed or
	// incomplete record data. Fatal for that record.
	KindDataIntegrity Kind = "data_integrity"
)

// SyncError defines the interface for integration-specific errors.
type SyncError interface {
	error
	Kind() Kind       // Error classification
	Code() string     // Stable business error code
	Message() string  // Operator-facing error message
	Details() string  // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the SyncError interface.
type BaseError struct {
	kind    Kind
	code    string
	message string
	details string
}

// NewBaseError creates a new base error.
func NewBaseError(kind Kind, code, message string) *BaseError {
	return &BaseError{
		kind:    kind,
		code:    code,
		message: message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification.
func (e *BaseError) Kind() Kind {
	return e.kind
}

// Code returns the stable business error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the operator-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:    e.kind,
		code:    e.code,
		message: e.message,
		details: details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrCredentialsUnavailable = NewBaseError(
		KindAuthentication,
		"CREDENTIALS_UNAVAILABLE",
		"could not load API credentials from the secret provider",
	)

	ErrAuthenticationFailed = NewBaseError(
		KindAuthentication,
		"AUTHENTICATION_FAILED",
		"password grant exchange failed",
	)

	ErrTokenResponseInvalid = NewBaseError(
		KindAuthentication,
		"TOKEN_RESPONSE_INVALID",
		"authentication response missing token",
	)

	// Data-integrity errors
	ErrUserResolutionFailed = NewBaseError(
		KindDataIntegrity,
		"USER_RESOLUTION_FAILED",
		"could not create or locate user",
	)

	ErrRecordIncomplete = NewBaseError(
		KindDataIntegrity,
		"RECORD_INCOMPLETE",
		"record is missing a required field",
	)

	ErrProjectNotConfigured = NewBaseError(
		KindDataIntegrity,
		"PROJECT_NOT_CONFIGURED",
		"project has no integration configuration",
	)
)

// RemoteAPIError represents a non-2xx response from the remote LMS after the
// retry budget is exhausted, implementing the SyncError interface.
type RemoteAPIError struct {
	status int
	body   []byte
}

// NewRemoteAPIError creates a remote-API error from a response status and body.
func NewRemoteAPIError(status int, body []byte) *RemoteAPIError {
	return &RemoteAPIError{
		status: status,
		body:   body,
	}
}

// Error implements the error interface.
func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("remote API call failed with status %d: %s", e.status, e.Details())
}

// Kind returns the error classification.
func (e *RemoteAPIError) Kind() Kind {
	return KindRemoteAPI
}

// Code returns the stable business error code.
func (e *RemoteAPIError) Code() string {
	return "REMOTE_API_FAILED"
}

// Message returns the operator-facing error message.
func (e *RemoteAPIError) Message() string {
	return fmt.Sprintf("remote API call failed with status %d", e.status)
}

// Status returns the HTTP status of the failed call.
func (e *RemoteAPIError) Status() int {
	return e.status
}

// Details returns the parsed JSON error body when the response carried one,
// otherwise the raw body.
func (e *RemoteAPIError) Details() string {
	if len(e.body) == 0 {
		return ""
	}

	var parsed map[string]any
	if err := json.Unmarshal(e.body, &parsed); err == nil {
		if compact, err := json.Marshal(parsed); err == nil {
			return string(compact)
		}
	}

	return string(e.body)
}

// TransportError represents a network-level failure reaching the remote LMS,
// implementing the SyncError interface.
type TransportError struct {
	err error
}

// NewTransportError wraps a transport-level failure.
func NewTransportError(err error) *TransportError {
	return &TransportError{err: err}
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "transport failure").Error()
}

// Unwrap exposes the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.err
}

// Kind returns the error classification.
func (e *TransportError) Kind() Kind {
	return KindTransport
}

// Code returns the stable business error code.
func (e *TransportError) Code() string {
	return "TRANSPORT_FAILED"
}

// Message returns the operator-facing error message.
func (e *TransportError) Message() string {
	return "could not reach the remote LMS"
}

// Details returns detailed error information.
func (e *TransportError) Details() string {
	return e.err.Error()
}

// KindOf reports the Kind of the first SyncError in err's chain, or an empty
// Kind when the chain carries none.
func KindOf(err error) Kind {
	var syncErr SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind()
	}

	return ""
}
