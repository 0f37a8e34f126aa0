//go:build unit || e2e

package builder

import (
	"time"

	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroundBuilder struct {
	ID             uuid.UUID
	Name           string
	OwnerID        uuid.UUID
	City           string
	BasePriceCents int64
	OpenTime       string
	CloseTime      string
	AverageRating  float64
	ReviewCount    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewGroundBuilder() *GroundBuilder {
	now := time.Now()
	return &GroundBuilder{
		ID:             uuid.New(),
		Name:           "Central Turf Arena",
		OwnerID:        uuid.New(),
		City:           "Pune",
		BasePriceCents: 150000,
		OpenTime:       "09:00",
		CloseTime:      "22:00",
		AverageRating:  4.5,
		ReviewCount:    12,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (g *GroundBuilder) With(mutate func(*GroundBuilder)) *GroundBuilder {
	mutate(g)
	return g
}

func (g *GroundBuilder) BuildView() *queries.GroundView {
	return &queries.GroundView{
		ID:             g.ID,
		Name:           g.Name,
		City:           g.City,
		BasePriceCents: g.BasePriceCents,
		OpenTime:       g.OpenTime,
		CloseTime:      g.CloseTime,
		AverageRating:  g.AverageRating,
		ReviewCount:    g.ReviewCount,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func (g *GroundBuilder) BuildSnapshot() *shared.GroundSnapshot {
	return &shared.GroundSnapshot{
		ID:             g.ID,
		Name:           g.Name,
		OwnerID:        g.OwnerID,
		City:           g.City,
		BasePriceCents: g.BasePriceCents,
		OpenTime:       g.OpenTime,
		CloseTime:      g.CloseTime,
	}
}

// Fluent builder methods
func (g *GroundBuilder) WithID(id uuid.UUID) *GroundBuilder {
	g.ID = id
	return g
}

func (g *GroundBuilder) WithOwnerID(ownerID uuid.UUID) *GroundBuilder {
	g.OwnerID = ownerID
	return g
}

func (g *GroundBuilder) WithCity(city string) *GroundBuilder {
	g.City = city
	return g
}

func (g *GroundBuilder) WithBasePriceCents(price int64) *GroundBuilder {
	g.BasePriceCents = price
	return g
}

func (g *GroundBuilder) WithHours(openTime, closeTime string) *GroundBuilder {
	g.OpenTime = openTime
	g.CloseTime = closeTime
	return g
}
