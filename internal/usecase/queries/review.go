package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByGround(ctx context.Context, groundID uuid.UUID) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	FindByGroundID(ctx context.Context, groundID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByGround(ctx context.Context, groundID uuid.UUID) ([]*ReviewView, error) {
	return q.repo.FindByGroundID(ctx, groundID)
}
