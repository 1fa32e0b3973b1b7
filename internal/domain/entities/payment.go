package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusAbandoned  PaymentStatus = "abandoned"
)

// Payment represents a listing fee charge. The linked item does not exist
// until the payment is confirmed, so ItemID is set during finalization.
type Payment struct {
	ID          uuid.UUID     `json:"id"`
	TxRef       string        `json:"txRef"`
	UserID      uuid.UUID     `json:"userId"`
	ItemID      *uuid.UUID    `json:"itemId,omitempty"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	GatewayTxID null.String   `json:"gatewayTxId,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	DeletedAt   *time.Time    `json:"-"`
}

// VerifyPaymentResponse reports the outcome of server-side verification
type VerifyPaymentResponse struct {
	TxRef   string        `json:"txRef"`
	Status  PaymentStatus `json:"status"`
	Item    *Item         `json:"item,omitempty"`
	Message string        `json:"message,omitempty"`
}
