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

type ChatService interface {
	Start(ctx context.Context, senderID uuid.UUID, input *entities.CreateChatInput) (*entities.Chat, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Chat, error)
	Send(ctx context.Context, senderID, chatID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error)
	Messages(ctx context.Context, userID, chatID uuid.UUID, limit, offset int) ([]*entities.Message, int, error)
}

// ChatHandler handles swap negotiation endpoints
type ChatHandler struct {
	chatUsecase ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase ChatService) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Start opens a conversation with another user
// POST /api/v1/chats
func (h *ChatHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	chat, err := h.chatUsecase.Start(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"chat": chat})
}

// List returns every conversation the caller takes part in
// GET /api/v1/chats
func (h *ChatHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	chats, err := h.chatUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"chats": chats})
}

// Send appends a message to a conversation
// POST /api/v1/chats/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid chat ID"))
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.chatUsecase.Send(c.Request.Context(), userID, chatID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": message})
}

// Messages returns a conversation's history
// GET /api/v1/chats/:id/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid chat ID"))
		return
	}
	page, limit := pagination(c)

	messages, total, err := h.chatUsecase.Messages(c.Request.Context(), userID, chatID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": paginationMeta(page, limit, total),
	})
}
