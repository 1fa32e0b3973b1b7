package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/storage"
	"lizexpress.backend/internal/interfaces/http/middleware"
	"lizexpress.backend/internal/interfaces/http/response"
)

type VerificationService interface {
	Submit(ctx context.Context, userID uuid.UUID, idFront, idBack, selfie storage.Upload) (*entities.Verification, error)
	Status(ctx context.Context, userID uuid.UUID) (*entities.VerificationGateStatus, error)
	Latest(ctx context.Context, userID uuid.UUID) (*entities.Verification, error)
}

// VerificationHandler handles identity verification endpoints
type VerificationHandler struct {
	verificationUsecase VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// Submit accepts the three identity documents
// POST /api/v1/verification
func (h *VerificationHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var headers []*multipart.FileHeader
	for _, field := range []string{"idFront", "idBack", "selfie"} {
		header, err := c.FormFile(field)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("idFront, idBack and selfie files are required"))
			return
		}
		headers = append(headers, header)
	}

	uploads, closeAll, err := openUploads(headers)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read verification documents"))
		return
	}
	defer closeAll()

	verification, err := h.verificationUsecase.Submit(c.Request.Context(), userID, uploads[0], uploads[1], uploads[2])
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"verification": verification})
}

// Status reports the listing gate decision for the caller
// GET /api/v1/verification/status
func (h *VerificationHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	status, err := h.verificationUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Latest returns the caller's most recent submission
// GET /api/v1/verification
func (h *VerificationHandler) Latest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	verification, err := h.verificationUsecase.Latest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Success(c, http.StatusOK, gin.H{"verification": nil})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verification": verification})
}
