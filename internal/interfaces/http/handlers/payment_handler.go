package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/interfaces/http/middleware"
	"lizexpress.backend/internal/interfaces/http/response"
)

type PaymentService interface {
	Verify(ctx context.Context, userID uuid.UUID, txRef string) (*entities.VerifyPaymentResponse, error)
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error)
}

// PaymentHandler handles listing fee payment endpoints
type PaymentHandler struct {
	paymentUsecase PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// Verify confirms a charge with the gateway. On success the item is
// created from the held draft and returned.
// POST /api/v1/payments/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input struct {
		TxRef string `json:"txRef" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	verifyResponse, err := h.paymentUsecase.Verify(c.Request.Context(), userID, input.TxRef)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, verifyResponse)
}

// History lists the caller's payments
// GET /api/v1/payments
func (h *PaymentHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	page, limit := pagination(c)

	payments, total, err := h.paymentUsecase.History(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payments":   payments,
		"pagination": paginationMeta(page, limit, total),
	})
}
