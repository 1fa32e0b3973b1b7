package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrInvalidInput         = errors.New("invalid input")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrProfileIncomplete    = errors.New("profile incomplete")
	ErrVerificationRequired = errors.New("identity verification required")
	ErrPaymentNotConfirmed  = errors.New("payment not confirmed")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrDraftExpired         = errors.New("listing draft expired")
	ErrFinalizeAfterCharge  = errors.New("payment settled but listing not published")
	ErrUploadFailed         = errors.New("file upload failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// FinalizeAfterCharge marks the paid-but-unlisted state: the charge
// settled but the item insert failed afterwards. Money and data are out
// of sync, so the message tells the user to contact support instead of
// hiding behind a generic error.
func FinalizeAfterCharge(txRef string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError,
		fmt.Sprintf("your payment was received but your listing could not be published, contact support with reference %s", txRef),
		fmt.Errorf("%w: %v", ErrFinalizeAfterCharge, err))
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}
