package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags the event a notification reports
type NotificationType string

const (
	NotificationItemSubmitted         NotificationType = "item_submitted"
	NotificationItemApproved          NotificationType = "item_approved"
	NotificationItemRejected          NotificationType = "item_rejected"
	NotificationPaymentSuccess        NotificationType = "payment_success"
	NotificationPaymentFailed         NotificationType = "payment_failed"
	NotificationVerificationSubmitted NotificationType = "verification_submitted"
	NotificationVerificationReviewed  NotificationType = "verification_reviewed"
	NotificationNewMessage            NotificationType = "new_message"
)

// Notification is owned by its recipient; only the recipient flips the
// read flag.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}
