package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// UserStatus represents the moderation standing of an account
type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusFlagged UserStatus = "FLAGGED"
)

// User represents a user account and its marketplace profile
type User struct {
	ID                    uuid.UUID   `json:"id"`
	Email                 string      `json:"email"`
	PasswordHash          string      `json:"-"`
	Role                  UserRole    `json:"role"`
	Status                UserStatus  `json:"status"`
	FullName              null.String `json:"fullName,omitempty"`
	PhoneNumber           null.String `json:"phoneNumber,omitempty"`
	ResidentialAddress    null.String `json:"residentialAddress,omitempty"`
	DateOfBirth           null.String `json:"dateOfBirth,omitempty"`
	Country               null.String `json:"country,omitempty"`
	State                 null.String `json:"state,omitempty"`
	AvatarURL             null.String `json:"avatarUrl,omitempty"`
	IsVerified            bool        `json:"isVerified"`
	VerificationSubmitted bool        `json:"verificationSubmitted"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
	DeletedAt             *time.Time  `json:"-"`
}

// ProfileComplete reports whether the profile carries everything a seller
// needs before listing. The listing flow refuses submissions until this
// holds.
func (u *User) ProfileComplete() bool {
	return u.FullName.String != "" &&
		u.ResidentialAddress.String != "" &&
		u.DateOfBirth.String != "" &&
		u.Country.String != "" &&
		u.State.String != ""
}

// MissingProfileFields lists the profile fields still required for listing
func (u *User) MissingProfileFields() []string {
	var missing []string
	if u.FullName.String == "" {
		missing = append(missing, "full_name")
	}
	if u.ResidentialAddress.String == "" {
		missing = append(missing, "residential_address")
	}
	if u.DateOfBirth.String == "" {
		missing = append(missing, "date_of_birth")
	}
	if u.Country.String == "" {
		missing = append(missing, "country")
	}
	if u.State.String == "" {
		missing = append(missing, "state")
	}
	return missing
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"omitempty,min=2,max=100"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// UpdateProfileInput represents input for updating the marketplace profile
type UpdateProfileInput struct {
	FullName           string `json:"fullName"`
	PhoneNumber        string `json:"phoneNumber"`
	ResidentialAddress string `json:"residentialAddress"`
	DateOfBirth        string `json:"dateOfBirth"`
	Country            string `json:"country"`
	State              string `json:"state"`
	AvatarURL          string `json:"avatarUrl"`
}

// ProfileResponse wraps a profile with its completeness summary
type ProfileResponse struct {
	User          *User    `json:"user"`
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields,omitempty"`
}
