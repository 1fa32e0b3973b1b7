package entities

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation between two users about an item
type Chat struct {
	ID         uuid.UUID  `json:"id"`
	SenderID   uuid.UUID  `json:"senderId"`
	ReceiverID uuid.UUID  `json:"receiverId"`
	ItemID     *uuid.UUID `json:"itemId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`

	Item        *Item    `json:"item,omitempty"`
	LastMessage *Message `json:"lastMessage,omitempty"`
}

// Message is a single chat message
type Message struct {
	ID        uuid.UUID `json:"id"`
	ChatID    uuid.UUID `json:"chatId"`
	SenderID  uuid.UUID `json:"senderId"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateChatInput starts a conversation about an item
type CreateChatInput struct {
	ReceiverID string `json:"receiverId" binding:"required,uuid"`
	ItemID     string `json:"itemId" binding:"omitempty,uuid"`
}

// SendMessageInput carries a new chat message
type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}
