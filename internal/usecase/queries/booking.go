package queries

import (
	"context"

	"turfbook/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListActiveSlots reports the occupied slots of a ground's day:
	// bookings whose status still blocks the calendar.
	ListActiveSlots(ctx context.Context, groundID uuid.UUID, date string) ([]*ActiveSlot, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// ListByOwnerAndStatus serves the admin dashboards: bookings of grounds
	// owned by ownerID, exact status match.
	ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status booking.Status) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindActiveSlots(ctx context.Context, groundID uuid.UUID, date string) ([]*ActiveSlot, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListActiveSlots(ctx context.Context, groundID uuid.UUID, date string) ([]*ActiveSlot, error) {
	return q.repo.FindActiveSlots(ctx, groundID, date)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	return q.repo.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status booking.Status) ([]*BookingListItem, error) {
	return q.repo.FindByOwnerAndStatus(ctx, ownerID, status.String())
}
