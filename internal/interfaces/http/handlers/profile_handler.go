package handlers

import (
	"context"
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

type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*entities.ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.ProfileResponse, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, avatar storage.Upload) (string, error)
}

// ProfileHandler handles marketplace profile endpoints
type ProfileHandler struct {
	profileUsecase ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase ProfileService) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// Get returns the caller's profile with its completeness summary
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update applies profile changes
// PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.Update(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// UploadAvatar stores a new avatar image
// POST /api/v1/profile/avatar
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("an avatar file is required"))
		return
	}

	uploads, closeAll, err := openUploads([]*multipart.FileHeader{header})
	if err != nil {
		response.Error(c, domainerrors.BadRequest("could not read avatar file"))
		return
	}
	defer closeAll()

	url, err := h.profileUsecase.UploadAvatar(c.Request.Context(), userID, uploads[0])
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"avatarUrl": url})
}
