package entities

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks an item a user wants to keep an eye on
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ItemID    uuid.UUID `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`

	Item *Item `json:"item,omitempty"`
}
