package repositories

import (
	"context"

	"github.com/google/uuid"
	"lizexpress.backend/internal/domain/entities"
)

// ChatRepository defines chat and message data operations
type ChatRepository interface {
	CreateChat(ctx context.Context, chat *entities.Chat) error
	GetChatByID(ctx context.Context, id uuid.UUID) (*entities.Chat, error)
	GetChatsByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Chat, error)
	FindChat(ctx context.Context, senderID, receiverID uuid.UUID, itemID *uuid.UUID) (*entities.Chat, error)
	CreateMessage(ctx context.Context, message *entities.Message) error
	GetMessagesByChatID(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]*entities.Message, int, error)
	MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
