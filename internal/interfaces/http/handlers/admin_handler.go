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
	"lizexpress.backend/internal/usecases"
)

type AdminService interface {
	Stats(ctx context.Context) (*usecases.AdminStats, error)
	ListUsers(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error)
	SetUserStatus(ctx context.Context, userID uuid.UUID, status entities.UserStatus) error
	PendingItems(ctx context.Context, limit, offset int) ([]*entities.Item, int, error)
	ApproveItem(ctx context.Context, adminID, itemID uuid.UUID) error
	RejectItem(ctx context.Context, adminID, itemID uuid.UUID, reason string) error
	PendingVerifications(ctx context.Context, limit, offset int) ([]*entities.Verification, int, error)
	ReviewVerification(ctx context.Context, adminID, verificationID uuid.UUID, input *entities.ReviewVerificationInput) error
}

// AdminHandler handles moderation endpoints
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Stats summarizes moderation workload
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ListUsers searches accounts
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := pagination(c)

	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), c.Query("search"), limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": paginationMeta(page, limit, total),
	})
}

// SetUserStatus flags or reactivates an account
// PUT /api/v1/admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input struct {
		Status entities.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SetUserStatus(c.Request.Context(), userID, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": input.Status})
}

// PendingItems lists items awaiting moderation
// GET /api/v1/admin/items/pending
func (h *AdminHandler) PendingItems(c *gin.Context) {
	page, limit := pagination(c)

	items, total, err := h.adminUsecase.PendingItems(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": paginationMeta(page, limit, total),
	})
}

// ApproveItem makes a pending item publicly visible
// POST /api/v1/admin/items/:id/approve
func (h *AdminHandler) ApproveItem(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	if err := h.adminUsecase.ApproveItem(c.Request.Context(), adminID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"approved": true})
}

// RejectItem declines a pending item with a reason
// POST /api/v1/admin/items/:id/reject
func (h *AdminHandler) RejectItem(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	var input entities.RejectItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("a rejection reason is required"))
		return
	}

	if err := h.adminUsecase.RejectItem(c.Request.Context(), adminID, itemID, input.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rejected": true})
}

// PendingVerifications lists identity submissions awaiting review
// GET /api/v1/admin/verifications/pending
func (h *AdminHandler) PendingVerifications(c *gin.Context) {
	page, limit := pagination(c)

	verifications, total, err := h.adminUsecase.PendingVerifications(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"verifications": verifications,
		"pagination":    paginationMeta(page, limit, total),
	})
}

// ReviewVerification records an approve or reject decision
// POST /api/v1/admin/verifications/:id/review
func (h *AdminHandler) ReviewVerification(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	verificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid verification ID"))
		return
	}

	var input entities.ReviewVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.ReviewVerification(c.Request.Context(), adminID, verificationID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviewed": true})
}
