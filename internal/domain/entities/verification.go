package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the review state of submitted documents
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Verification holds a user's identity document submission
type Verification struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"userId"`
	IDFrontImage    string             `json:"idFrontImage"`
	IDBackImage     string             `json:"idBackImage"`
	SelfieImage     string             `json:"selfieImage"`
	Status          VerificationStatus `json:"status"`
	ReviewedBy      *uuid.UUID         `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
	RejectionReason null.String        `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// VerificationGateStatus is the listing gate decision for a user
type VerificationGateStatus struct {
	IsVerified        bool `json:"isVerified"`
	HasSubmitted      bool `json:"hasSubmitted"`
	NeedsVerification bool `json:"needsVerification"`
}

// ReviewVerificationInput carries a moderation decision on documents
type ReviewVerificationInput struct {
	Status VerificationStatus `json:"status" binding:"required"`
	Reason string             `json:"reason"`
}
