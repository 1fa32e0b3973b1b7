package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"lizexpress.backend/internal/infrastructure/gateway"
	"lizexpress.backend/internal/interfaces/http/response"
	"lizexpress.backend/pkg/logger"
)

type WebhookService interface {
	HandleEvent(ctx context.Context, event *gateway.WebhookEvent) error
}

type signatureVerifier interface {
	VerifyWebhookSignature(signature string) bool
}

// WebhookHandler handles payment gateway webhooks
type WebhookHandler struct {
	webhookUsecase WebhookService
	verifier       signatureVerifier
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase WebhookService, verifier signatureVerifier) *WebhookHandler {
	return &WebhookHandler{webhookUsecase: webhookUsecase, verifier: verifier}
}

// HandlePaymentWebhook receives charge events from Flutterwave
// POST /api/v1/webhooks/flutterwave
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	if !h.verifier.VerifyWebhookSignature(c.GetHeader(gateway.SignatureHeader)) {
		logger.Warn(c.Request.Context(), "webhook with bad signature rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event gateway.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.webhookUsecase.HandleEvent(c.Request.Context(), &event); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
