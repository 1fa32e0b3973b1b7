package models

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time

	Item Item `gorm:"foreignKey:ItemID"`
}
