package readstore

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

const listReviewsByGroundSQL = `
SELECT r.id, r.ground_id, r.user_id, u.email, r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.ground_id = $1
ORDER BY r.created_at DESC`

func (s *ReviewReadStore) FindByGroundID(ctx context.Context, groundID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, listReviewsByGroundSQL, groundID)
	if err != nil {
		return nil, classifyPgErr("failed to list reviews", err)
	}
	defer rows.Close()

	var out []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.GroundID, &v.UserID, &v.UserEmail, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, classifyPgErr("failed to scan review", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to read reviews", err)
	}
	return out, nil
}

const findReviewSnapshotSQL = `
SELECT id, user_id, ground_id, booking_id, rating, comment
FROM reviews
WHERE id = $1`

func (s *ReviewReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	var snap shared.ReviewSnapshot
	err := s.db.QueryRow(ctx, findReviewSnapshotSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.GroundID, &snap.BookingID, &snap.Rating, &snap.Comment,
	)
	if err != nil {
		return nil, classifyPgErr("failed to find review", err)
	}
	return &snap, nil
}
