package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/interfaces/http/middleware"
	"lizexpress.backend/internal/interfaces/http/response"
)

type ItemService interface {
	Browse(ctx context.Context, filter entities.ItemFilter, limit, offset int) ([]*entities.Item, int, error)
	Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entities.Item, error)
	Mine(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Item, int, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	Categories() []string
}

// ItemHandler handles item browsing endpoints
type ItemHandler struct {
	itemUsecase ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemUsecase ItemService) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase}
}

// Browse lists approved items
// GET /api/v1/items
func (h *ItemHandler) Browse(c *gin.Context) {
	filter := entities.ItemFilter{
		Category: c.Query("category"),
		State:    c.Query("state"),
		Country:  c.Query("country"),
	}
	page, limit := pagination(c)

	items, total, err := h.itemUsecase.Browse(c.Request.Context(), filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": paginationMeta(page, limit, total),
	})
}

// Get returns a single item
// GET /api/v1/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	var viewerID *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		viewerID = &userID
	}

	item, err := h.itemUsecase.Get(c.Request.Context(), id, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"item": item})
}

// Mine lists the caller's own items in every status
// GET /api/v1/items/mine
func (h *ItemHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}
	page, limit := pagination(c)

	items, total, err := h.itemUsecase.Mine(c.Request.Context(), userID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": paginationMeta(page, limit, total),
	})
}

// Delete removes the caller's own item
// DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid item ID"))
		return
	}

	if err := h.itemUsecase.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Categories returns the fixed category list
// GET /api/v1/items/categories
func (h *ItemHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": h.itemUsecase.Categories()})
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginationMeta(page, limit, total int) gin.H {
	totalPages := (total + limit - 1) / limit
	return gin.H{
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": totalPages,
	}
}
