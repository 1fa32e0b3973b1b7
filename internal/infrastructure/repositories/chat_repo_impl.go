package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"lizexpress.backend/internal/domain/entities"
	domainerrors "lizexpress.backend/internal/domain/errors"
	"lizexpress.backend/internal/infrastructure/models"
	"lizexpress.backend/pkg/utils"
)

// ChatRepository implements chat and message data operations
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateChat creates a new conversation
func (r *ChatRepository) CreateChat(ctx context.Context, chat *entities.Chat) error {
	if chat.ID == uuid.Nil {
		chat.ID = utils.GenerateUUIDv7()
	}
	m := &models.Chat{
		ID:         chat.ID,
		SenderID:   chat.SenderID,
		ReceiverID: chat.ReceiverID,
		ItemID:     chat.ItemID,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	chat.CreatedAt = m.CreatedAt
	chat.UpdatedAt = m.UpdatedAt
	return nil
}

// GetChatByID gets a chat by id
func (r *ChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*entities.Chat, error) {
	var m models.Chat
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.chatToEntity(&m), nil
}

// GetChatsByUserID gets every chat the user takes part in, most
// recently active first, each with its last message attached.
func (r *ChatRepository) GetChatsByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Chat, error) {
	var ms []models.Chat
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	chats := make([]*entities.Chat, 0, len(ms))
	for i := range ms {
		chat := r.chatToEntity(&ms[i])

		var last models.Message
		err := db.WithContext(ctx).
			Where("chat_id = ?", ms[i].ID).
			Order("created_at DESC").
			First(&last).Error
		if err == nil {
			chat.LastMessage = r.messageToEntity(&last)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		chats = append(chats, chat)
	}
	return chats, nil
}

// FindChat looks up an existing conversation between two users about
// an item, in either direction.
func (r *ChatRepository) FindChat(ctx context.Context, senderID, receiverID uuid.UUID, itemID *uuid.UUID) (*entities.Chat, error) {
	db := GetDB(ctx, r.db)
	query := db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			senderID, receiverID, receiverID, senderID)
	if itemID != nil {
		query = query.Where("item_id = ?", *itemID)
	} else {
		query = query.Where("item_id IS NULL")
	}

	var m models.Chat
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.chatToEntity(&m), nil
}

// CreateMessage appends a message and bumps the chat's activity time
func (r *ChatRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	if message.ID == uuid.Nil {
		message.ID = utils.GenerateUUIDv7()
	}
	m := &models.Message{
		ID:       message.ID,
		ChatID:   message.ChatID,
		SenderID: message.SenderID,
		Content:  message.Content,
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Model(&models.Chat{}).
		Where("id = ?", message.ChatID).
		Update("updated_at", time.Now()).Error; err != nil {
		return err
	}
	message.CreatedAt = m.CreatedAt
	return nil
}

// GetMessagesByChatID gets messages for a chat, oldest first
func (r *ChatRepository) GetMessagesByChatID(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]*entities.Message, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Message{}).
		Where("chat_id = ?", chatID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Message
	query := db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	messages := make([]*entities.Message, 0, len(ms))
	for i := range ms {
		messages = append(messages, r.messageToEntity(&ms[i]))
	}
	return messages, int(total), nil
}

// MarkMessagesRead marks everything the reader has not sent as read
func (r *ChatRepository) MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Message{}).
		Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, readerID, false).
		Update("is_read", true).Error
}

// CountByUserID counts the chats a user takes part in
func (r *ChatRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Chat{}).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *ChatRepository) chatToEntity(m *models.Chat) *entities.Chat {
	return &entities.Chat{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ItemID:     m.ItemID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *ChatRepository) messageToEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:        m.ID,
		ChatID:    m.ChatID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
