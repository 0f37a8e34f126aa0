package repository

import (
	"context"

	"turfbook/internal/domain/review"
	"turfbook/internal/infra"
	"turfbook/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, booking_id, ground_id, user_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(), rev.BookingID(), rev.GroundID(), rev.UserID(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create review", err)
	}
	return id, nil
}

const updateReviewSQL = `
UPDATE reviews SET rating = $2, comment = $3, updated_at = now() WHERE id = $1`

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL, reviewID, rev.Rating().Value(), rev.Comment().String())
	if err != nil {
		return classifyPgErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "review not found", nil)
	}
	return nil
}

const deleteReviewSQL = `DELETE FROM reviews WHERE id = $1`

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReviewSQL, reviewID)
	if err != nil {
		return classifyPgErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "review not found", nil)
	}
	return nil
}
