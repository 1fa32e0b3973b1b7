package models

import (
	"time"

	"github.com/google/uuid"
)

type Verification struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	IDFrontImage    string    `gorm:"type:varchar(500);not null"`
	IDBackImage     string    `gorm:"type:varchar(500);not null"`
	SelfieImage     string    `gorm:"type:varchar(500);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
