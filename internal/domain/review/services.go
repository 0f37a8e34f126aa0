package review

import (
	"context"
	"time"

	"turfbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

type EligibilityInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	GroundID  uuid.UUID
	Now       time.Time
}

// EligibilityChecker decides whether the booking entitles its holder to
// review the ground: confirmed, on the right ground, and already played.
type EligibilityChecker interface {
	CanPostReview(ctx context.Context, input EligibilityInput) error
}
