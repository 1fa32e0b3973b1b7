package models

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SenderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	Chat Chat `gorm:"foreignKey:ChatID"`
}
