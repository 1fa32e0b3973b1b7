package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email                 string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	Role                  string    `gorm:"type:varchar(20);not null;default:'USER'"`
	Status                string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	FullName              *string   `gorm:"type:varchar(100)"`
	PhoneNumber           *string   `gorm:"type:varchar(50)"`
	ResidentialAddress    *string   `gorm:"type:varchar(255)"`
	DateOfBirth           *string   `gorm:"type:varchar(20)"`
	Country               *string   `gorm:"type:varchar(100)"`
	State                 *string   `gorm:"type:varchar(100)"`
	AvatarURL             *string   `gorm:"type:varchar(500)"`
	IsVerified            bool      `gorm:"not null;default:false"`
	VerificationSubmitted bool      `gorm:"not null;default:false"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}
