package readstore

import (
	"context"

	"turfbook/internal/infra/db"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroundReadStore struct {
	db db.DBTX
}

func NewGroundReadStore(db db.DBTX) *GroundReadStore {
	return &GroundReadStore{db: db}
}

const groundViewColumns = `
SELECT g.id, g.name, g.city, g.base_price_cents, g.open_time, g.close_time,
       COALESCE(s.average_rating, 0), COALESCE(s.review_count, 0),
       g.created_at, g.updated_at
FROM grounds g
LEFT JOIN ground_rating_stats s ON s.ground_id = g.id`

func (s *GroundReadStore) FindAll(ctx context.Context, filter queries.GroundFilter) ([]*queries.GroundView, error) {
	sql := groundViewColumns
	var args []any
	if filter.City != "" {
		sql += `
WHERE lower(g.city) = lower($1)`
		args = append(args, filter.City)
	}
	switch filter.Sort {
	case queries.GroundSortPriceAsc:
		sql += `
ORDER BY g.base_price_cents ASC, g.name`
	case queries.GroundSortPriceDesc:
		sql += `
ORDER BY g.base_price_cents DESC, g.name`
	default:
		sql += `
ORDER BY g.name`
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classifyPgErr("failed to list grounds", err)
	}
	defer rows.Close()

	var out []*queries.GroundView
	for rows.Next() {
		var v queries.GroundView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.BasePriceCents, &v.OpenTime, &v.CloseTime,
			&v.AverageRating, &v.ReviewCount,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, classifyPgErr("failed to scan ground", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgErr("failed to read grounds", err)
	}
	return out, nil
}

func (s *GroundReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroundView, error) {
	var v queries.GroundView
	err := s.db.QueryRow(ctx, groundViewColumns+`
WHERE g.id = $1`, id).Scan(
		&v.ID, &v.Name, &v.City, &v.BasePriceCents, &v.OpenTime, &v.CloseTime,
		&v.AverageRating, &v.ReviewCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, classifyPgErr("failed to find ground", err)
	}
	return &v, nil
}

const findGroundSnapshotSQL = `
SELECT id, name, owner_id, city, base_price_cents, open_time, close_time
FROM grounds
WHERE id = $1`

func (s *GroundReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.GroundSnapshot, error) {
	var snap shared.GroundSnapshot
	err := s.db.QueryRow(ctx, findGroundSnapshotSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.OwnerID, &snap.City,
		&snap.BasePriceCents, &snap.OpenTime, &snap.CloseTime,
	)
	if err != nil {
		return nil, classifyPgErr("failed to find ground", err)
	}
	return &snap, nil
}
