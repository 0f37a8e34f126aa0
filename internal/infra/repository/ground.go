package repository

import (
	"context"

	"turfbook/internal/domain/ground"
	"turfbook/internal/infra/db"

	"github.com/google/uuid"
)

type GroundRepository struct{}

func NewGroundRepository() *GroundRepository {
	return &GroundRepository{}
}

const createGroundSQL = `
INSERT INTO grounds (id, name, owner_id, city, base_price_cents, open_time, close_time)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *GroundRepository) Create(ctx context.Context, tx db.DBTX, g *ground.Ground) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createGroundSQL,
		g.ID(), g.Name(), g.OwnerID(), g.City(),
		g.BasePriceCents(), g.Hours().Open(), g.Hours().Close(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create ground", err)
	}
	return id, nil
}
