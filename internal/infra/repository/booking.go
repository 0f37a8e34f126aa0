package repository

import (
	"context"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra/db"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, ground_id, user_id, date, start_time, end_time, price_cents, proof_ref, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(), b.GroundID(), b.UserID(),
		b.Date(), b.StartTime(), b.EndTime(),
		b.PriceCents(), b.ProofRef(), b.Status().String(),
		b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create booking", err)
	}
	return id, nil
}

const findBookingForUpdateSQL = `
SELECT id, ground_id, user_id, date, start_time, end_time, price_cents, proof_ref, status, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := tx.QueryRow(ctx, findBookingForUpdateSQL, id).Scan(
		&snap.ID, &snap.GroundID, &snap.UserID,
		&snap.Date, &snap.StartTime, &snap.EndTime,
		&snap.PriceCents, &snap.ProofRef, &status,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to lock booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, prior, next booking.Status, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, prior.String(), next.String(), now)
	if err != nil {
		return 0, classifyPgErr("failed to update booking status", err)
	}
	return tag.RowsAffected(), nil
}
