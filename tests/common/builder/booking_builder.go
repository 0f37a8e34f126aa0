//go:build unit || e2e

package builder

import (
	"time"

	dombooking "turfbook/internal/domain/booking"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	GroundID   uuid.UUID
	GroundName string
	UserID     uuid.UUID
	UserEmail  string
	Date       string
	StartTime  string
	EndTime    string
	PriceCents int64
	ProofRef   string
	Status     dombooking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:         uuid.New(),
		GroundID:   uuid.New(),
		GroundName: "Central Turf Arena",
		UserID:     uuid.New(),
		UserEmail:  "player@example.com",
		Date:       "2026-09-15",
		StartTime:  "10:00",
		EndTime:    "11:00",
		PriceCents: 150000,
		ProofRef:   "/media/proof.png",
		Status:     dombooking.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.GroundID, b.UserID, b.Date, b.StartTime, b.EndTime, b.PriceCents, b.ProofRef, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		GroundID:   b.GroundID,
		GroundName: b.GroundName,
		UserID:     b.UserID,
		UserEmail:  b.UserEmail,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status.String(),
		PriceCents: b.PriceCents,
		ProofRef:   b.ProofRef,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:         b.ID,
		GroundID:   b.GroundID,
		GroundName: b.GroundName,
		UserEmail:  b.UserEmail,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     b.Status.String(),
		PriceCents: b.PriceCents,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         b.ID,
		GroundID:   b.GroundID,
		UserID:     b.UserID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		PriceCents: b.PriceCents,
		ProofRef:   b.ProofRef,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithGroundID(groundID uuid.UUID) *BookingBuilder {
	b.GroundID = groundID
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithSlot(date, startTime, endTime string) *BookingBuilder {
	b.Date = date
	b.StartTime = startTime
	b.EndTime = endTime
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = dombooking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = dombooking.StatusCancelled
	return b
}
