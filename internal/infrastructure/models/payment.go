package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TxRef       string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID      *uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64    `gorm:"not null"`
	Currency    string     `gorm:"type:varchar(10);not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	GatewayTxID *string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
