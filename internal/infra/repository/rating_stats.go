package repository

import (
	"context"

	"turfbook/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// Recomputed from the reviews table inside the same transaction as the
// review write, so the stats row never drifts.
const recalcRatingStatsSQL = `
INSERT INTO ground_rating_stats (ground_id, review_count, average_rating, updated_at)
SELECT $1, COUNT(*), COALESCE(AVG(rating), 0), now()
FROM reviews
WHERE ground_id = $1
ON CONFLICT (ground_id) DO UPDATE
SET review_count = EXCLUDED.review_count,
    average_rating = EXCLUDED.average_rating,
    updated_at = EXCLUDED.updated_at`

func (r *RatingStatsRepository) RecalcGroundRatingStats(ctx context.Context, tx db.DBTX, groundID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRatingStatsSQL, groundID); err != nil {
		return classifyPgErr("failed to recalculate ground rating stats", err)
	}
	return nil
}
