package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "lizexpress.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors carry their own status and
// message; bare domain sentinels are mapped, anything else is a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.NewAppError(statusFor(err), err.Error(), err)
	}
	// paid-but-unlisted keeps its contact-support message, everything
	// else at 500 is masked
	if appErr.Code == http.StatusInternalServerError && !errors.Is(err, domainerrors.ErrFinalizeAfterCharge) {
		appErr.Message = "internal server error"
	}

	c.JSON(appErr.Code, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrProfileIncomplete),
		errors.Is(err, domainerrors.ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrVerificationRequired):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrPaymentNotConfirmed),
		errors.Is(err, domainerrors.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerrors.ErrDraftExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}
