package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ItemStatus represents the moderation state of a listing
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "pending"
	ItemStatusActive   ItemStatus = "active"
	ItemStatusRejected ItemStatus = "rejected"
)

// ItemCondition represents the declared condition of a listed item
type ItemCondition string

const (
	ItemConditionBrandNew   ItemCondition = "Brand New"
	ItemConditionFairlyUsed ItemCondition = "Fairly Used"
)

// ItemCategories are the categories a listing may declare
var ItemCategories = []string{
	"Electronics", "Furniture", "Computer", "Phones", "Clothing",
	"Cosmetics", "Automobiles", "Shoes", "Jewelry", "Real Estate", "Others",
}

// MaxItemImages is the maximum number of images per listing
const MaxItemImages = 3

// Item represents a marketplace listing. A row exists only after the
// listing fee payment was confirmed; status stays pending until moderation
// approves or rejects it.
type Item struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"userId"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	Condition       ItemCondition `json:"condition"`
	BuyingPrice     null.Float64  `json:"buyingPrice,omitempty"`
	EstimatedCost   float64       `json:"estimatedCost"`
	SwapFor         string        `json:"swapFor"`
	Location        null.String   `json:"location,omitempty"` // "lat,lng", best effort
	ItemLocation    string        `json:"itemLocation"`
	ItemState       string        `json:"itemState"`
	ItemCountry     string        `json:"itemCountry"`
	Images          []string      `json:"images"`
	ReceiptImage    null.String   `json:"receiptImage,omitempty"`
	Status          ItemStatus    `json:"status"`
	ApprovedAt      *time.Time    `json:"approvedAt,omitempty"`
	ApprovedBy      *uuid.UUID    `json:"approvedBy,omitempty"`
	RejectionReason null.String   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	DeletedAt       *time.Time    `json:"-"`
}

// ItemFilter narrows browse queries
type ItemFilter struct {
	Status   ItemStatus
	UserID   *uuid.UUID
	Category string
	State    string
	Country  string
}

// SubmitListingInput carries the listing form fields. Image and receipt
// files arrive as multipart parts alongside it.
type SubmitListingInput struct {
	Name          string  `form:"name" binding:"required"`
	Description   string  `form:"description" binding:"required"`
	Category      string  `form:"category" binding:"required"`
	Condition     string  `form:"condition" binding:"required"`
	BuyingPrice   float64 `form:"buyingPrice"`
	EstimatedCost float64 `form:"estimatedCost"`
	SwapFor       string  `form:"swapFor" binding:"required"`
	Location      string  `form:"location"`
	ItemLocation  string  `form:"itemLocation"`
	ItemState     string  `form:"itemState"`
	ItemCountry   string  `form:"itemCountry"`
}

// ListingDraft is the fully-formed item payload held between submission and
// payment confirmation. It is never persisted to the items table until the
// payment for TxRef is confirmed.
type ListingDraft struct {
	UserID        uuid.UUID `json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Condition     string    `json:"condition"`
	BuyingPrice   *float64  `json:"buyingPrice,omitempty"`
	EstimatedCost float64   `json:"estimatedCost"`
	SwapFor       string    `json:"swapFor"`
	Location      string    `json:"location,omitempty"`
	ItemLocation  string    `json:"itemLocation"`
	ItemState     string    `json:"itemState"`
	ItemCountry   string    `json:"itemCountry"`
	Images        []string  `json:"images"`
	ReceiptImage  string    `json:"receiptImage,omitempty"`
}

// SubmitListingResponse tells the client how to complete checkout
type SubmitListingResponse struct {
	TxRef            string    `json:"txRef"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	GatewayPublicKey string    `json:"gatewayPublicKey"`
	CustomerEmail    string    `json:"customerEmail"`
	CustomerName     string    `json:"customerName,omitempty"`
	CustomerPhone    string    `json:"customerPhone,omitempty"`
	Description      string    `json:"description"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// RejectItemInput carries the moderation rejection reason
type RejectItemInput struct {
	Reason string `json:"reason" binding:"required"`
}
