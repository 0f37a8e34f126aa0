package shared

import (
	"context"

	"github.com/google/uuid"
)

// Notification informs a recipient that a booking reached a new status.
// Delivery is fire-and-forget: a failed publish never rolls back the ledger
// write that caused it.
type Notification struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Status      string    `json:"status"`
	RecipientID uuid.UUID `json:"recipient_id"`
}

type NotificationSink interface {
	Publish(ctx context.Context, n Notification) error
}
