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

type FavoriteService interface {
	Add(ctx context.Context, userID, itemID uuid.UUID) (*entities.Favorite, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error)
}

// FavoriteHandler handles saved item endpoints
type FavoriteHandler struct {
	favoriteUsecase FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteUsecase FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteUsecase: favoriteUsecase}
}

// Add saves an item to the caller's favorites
// POST /api/v1/favorites/:itemId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	favorite, err := h.favoriteUsecase.Add(c.Request.Context(), userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"favorite": favorite})
}

// Remove drops an item from the caller's favorites
// DELETE /api/v1/favorites/:itemId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	if err := h.favoriteUsecase.Remove(c.Request.Context(), userID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// List returns the caller's favorites with their items
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	favorites, err := h.favoriteUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": favorites})
}
