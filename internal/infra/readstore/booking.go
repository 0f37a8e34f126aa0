package readstore

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"turfbook/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingViewSQL = `
SELECT b.id, b.ground_id, g.name, b.user_id, u.email,
       b.date, b.start_time, b.end_time, b.status, b.price_cents, b.proof_ref,
       b.created_at, b.updated_at
FROM bookings b
JOIN grounds g ON g.id = b.ground_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := s.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&v.ID, &v.GroundID, &v.GroundName, &v.UserID, &v.UserEmail,
		&v.Date, &v.StartTime, &v.EndTime, &v.Status, &v.PriceCents, &v.ProofRef,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to find booking", err)
	}
	return &v, nil
}

const findActiveSlotsSQL = `
SELECT start_time, end_time, status
FROM bookings
WHERE ground_id = $1 AND date = $2 AND status IN ('pending', 'confirmed')
ORDER BY start_time`

func (s *BookingReadStore) FindActiveSlots(ctx context.Context, groundID uuid.UUID, date string) ([]*queries.ActiveSlot, error) {
	rows, err := s.db.Query(ctx, findActiveSlotsSQL, groundID, date)
	if err != nil {
		return nil, classifyPgErr("failed to list active slots", err)
	}
	defer rows.Close()

	var out []*queries.ActiveSlot
	for rows.Next() {
		var slot queries.ActiveSlot
		if err := rows.Scan(&slot.StartTime, &slot.EndTime, &slot.Status); err != nil {
			return nil, classifyPgErr("failed to scan active slot", err)
		}
		out = append(out, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to read active slots", err)
	}
	return out, nil
}

const listBookingItemsByUserSQL = `
SELECT b.id, b.ground_id, g.name, u.email,
       b.date, b.start_time, b.end_time, b.status, b.price_cents, b.created_at
FROM bookings b
JOIN grounds g ON g.id = b.ground_id
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.scanListItems(ctx, listBookingItemsByUserSQL, userID)
}

const listBookingItemsByOwnerAndStatusSQL = `
SELECT b.id, b.ground_id, g.name, u.email,
       b.date, b.start_time, b.end_time, b.status, b.price_cents, b.created_at
FROM bookings b
JOIN grounds g ON g.id = b.ground_id
JOIN users u ON u.id = b.user_id
WHERE g.owner_id = $1 AND b.status = $2
ORDER BY b.created_at DESC`

func (s *BookingReadStore) FindByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]*queries.BookingListItem, error) {
	return s.scanListItems(ctx, listBookingItemsByOwnerAndStatusSQL, ownerID, status)
}

func (s *BookingReadStore) scanListItems(ctx context.Context, sql string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyPgErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.GroundID, &item.GroundName, &item.UserEmail,
			&item.Date, &item.StartTime, &item.EndTime, &item.Status, &item.PriceCents, &item.CreatedAt,
		); err != nil {
			return nil, classifyPgErr("failed to scan booking", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to read bookings", err)
	}
	return out, nil
}

const findBookingSnapshotSQL = `
SELECT id, ground_id, user_id, date, start_time, end_time, price_cents, proof_ref, status, created_at, updated_at
FROM bookings
WHERE id = $1`

func (s *BookingReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap   shared.BookingSnapshot
		status string
	)
	err := s.db.QueryRow(ctx, findBookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.GroundID, &snap.UserID,
		&snap.Date, &snap.StartTime, &snap.EndTime,
		&snap.PriceCents, &snap.ProofRef, &status,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

const activeSlotExistsSQL = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE ground_id = $1 AND date = $2 AND start_time = $3 AND end_time = $4
	  AND status IN ('pending', 'confirmed')
)`

func (s *BookingReadStore) ActiveSlotExists(ctx context.Context, groundID uuid.UUID, date, startTime, endTime string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, activeSlotExistsSQL, groundID, date, startTime, endTime).Scan(&exists)
	if err != nil {
		return false, classifyPgErr("failed to check slot availability", err)
	}
	return exists, nil
}
