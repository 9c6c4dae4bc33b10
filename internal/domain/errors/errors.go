// Package errors defines the application error taxonomy shared by every
// delivery surface: authentication, authorization, not-found and delivery
// errors, each carrying an HTTP status and a stable business error code.
package errors

import (
	"net/http"

	"teachmatch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors: the credential itself is missing, bad or expired,
	// or resolves to an account that may not connect.
	ErrCredentialMissing = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_MISSING",
		"Authentication credential is missing",
		"",
	)

	ErrCredentialInvalid = NewBaseError(
		http.StatusUnauthorized,
		"CREDENTIAL_INVALID",
		"Invalid or expired authentication credential",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusUnauthorized,
		"USER_INACTIVE",
		"This account is deactivated",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Authorization errors: valid identity, insufficient rights.
	ErrNotConversationParty = NewBaseError(
		http.StatusForbidden,
		"NOT_CONVERSATION_PARTY",
		"You are not a party to this conversation",
		"",
	)

	ErrNotMessageSender = NewBaseError(
		http.StatusForbidden,
		"NOT_MESSAGE_SENDER",
		"Only the sender may delete a message",
		"",
	)

	ErrNotNotificationOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_NOTIFICATION_OWNER",
		"This notification belongs to another user",
		"",
	)

	ErrRoomJoinRefused = NewBaseError(
		http.StatusForbidden,
		"ROOM_JOIN_REFUSED",
		"You are not allowed to join this room",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"You do not have permission to perform this action",
		"",
	)

	// Not-found errors for referenced resources.
	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation and persistence errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrNotificationTypeInvalid = NewBaseError(
		http.StatusBadRequest,
		"NOTIFICATION_TYPE_INVALID",
		"Unknown notification type",
		"",
	)

	// Delivery errors are logged and swallowed at the fan-out boundary; the
	// HTTP code here only matters if one ever leaks to a handler.
	ErrPushDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"PUSH_DELIVERY_FAILED",
		"Push provider call failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected persistence failure.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.WithStack(base)
}
