package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	Category        string    `gorm:"type:varchar(50);not null;index"`
	Condition       string    `gorm:"type:varchar(20);not null"`
	BuyingPrice     *float64
	EstimatedCost   float64 `gorm:"not null"`
	SwapFor         string  `gorm:"type:text;not null"`
	Location        *string `gorm:"type:varchar(100)"`
	ItemLocation    string  `gorm:"type:varchar(255);not null"`
	ItemState       string  `gorm:"type:varchar(100);not null;index"`
	ItemCountry     string  `gorm:"type:varchar(100);not null;index"`
	Images          string  `gorm:"type:jsonb;not null;default:'[]'"`
	ReceiptImage    *string `gorm:"type:varchar(500)"`
	Status          string  `gorm:"type:varchar(20);not null;index"`
	ApprovedAt      *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
