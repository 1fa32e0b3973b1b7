package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/domain/repositories"
	"lizexpress.backend/pkg/logger"
)

// ChatUsecase handles swap negotiation conversations
type ChatUsecase struct {
	chatRepo         repositories.ChatRepository
	userRepo         repositories.UserRepository
	itemRepo         repositories.ItemRepository
	notificationRepo repositories.NotificationRepository
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	notificationRepo repositories.NotificationRepository,
) *ChatUsecase {
	return &ChatUsecase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		itemRepo:         itemRepo,
		notificationRepo: notificationRepo,
	}
}

// Start opens a conversation with another user, optionally about an
// item. An existing conversation is reused.
func (u *ChatUsecase) Start(ctx context.Context, senderID uuid.UUID, input *entities.CreateChatInput) (*entities.Chat, error) {
	receiverID, err := uuid.Parse(input.ReceiverID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid receiver id")
	}
	if receiverID == senderID {
		return nil, domainerrors.BadRequest("cannot start a chat with yourself")
	}

	if _, err := u.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	var itemID *uuid.UUID
	if input.ItemID != "" {
		parsed, err := uuid.Parse(input.ItemID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid item id")
		}
		if _, err := u.itemRepo.GetByID(ctx, parsed); err != nil {
			return nil, err
		}
		itemID = &parsed
	}

	existing, err := u.chatRepo.FindChat(ctx, senderID, receiverID, itemID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	chat := &entities.Chat{SenderID: senderID, ReceiverID: receiverID, ItemID: itemID}
	if err := u.chatRepo.CreateChat(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// List returns every conversation the user takes part in
func (u *ChatUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Chat, error) {
	return u.chatRepo.GetChatsByUserID(ctx, userID)
}

// Send appends a message to a conversation the sender takes part in and
// notifies the other participant.
func (u *ChatUsecase) Send(ctx context.Context, senderID, chatID uuid.UUID, input *entities.SendMessageInput) (*entities.Message, error) {
	chat, err := u.participantChat(ctx, chatID, senderID)
	if err != nil {
		return nil, err
	}

	message := &entities.Message{ChatID: chatID, SenderID: senderID, Content: input.Content}
	if err := u.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	receiverID := chat.SenderID
	if receiverID == senderID {
		receiverID = chat.ReceiverID
	}
	if err := u.notificationRepo.Create(ctx, &entities.Notification{
		UserID:  receiverID,
		Type:    entities.NotificationNewMessage,
		Title:   "New message",
		Content: "You have a new message about a swap.",
	}); err != nil {
		logger.Warn(ctx, "failed to create message notification", zap.Error(err))
	}

	return message, nil
}

// Messages returns a conversation's history and marks the other side's
// messages as read.
func (u *ChatUsecase) Messages(ctx context.Context, userID, chatID uuid.UUID, limit, offset int) ([]*entities.Message, int, error) {
	if _, err := u.participantChat(ctx, chatID, userID); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}

	messages, total, err := u.chatRepo.GetMessagesByChatID(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if err := u.chatRepo.MarkMessagesRead(ctx, chatID, userID); err != nil {
		logger.Warn(ctx, "failed to mark messages read", zap.Error(err))
	}
	return messages, total, nil
}

func (u *ChatUsecase) participantChat(ctx context.Context, chatID, userID uuid.UUID) (*entities.Chat, error) {
	chat, err := u.chatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.SenderID != userID && chat.ReceiverID != userID {
		return nil, domainerrors.ErrForbidden
	}
	return chat, nil
}
