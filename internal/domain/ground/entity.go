package ground

import (
	"strings"
	"time"

	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errs.New("ground name cannot be empty")
	ErrEmptyCity     = errs.New("ground city cannot be empty")
	ErrNegativePrice = errs.New("base price cannot be negative")
)

// Ground is a bookable sports ground. Immutable for booking purposes once
// onboarded; the engine only reads it.
type Ground struct {
	id             uuid.UUID
	name           string
	ownerID        uuid.UUID
	city           string
	basePriceCents int64
	hours          OperatingHours
	createdAt      time.Time
	updatedAt      time.Time
}

func NewGround(name string, ownerID uuid.UUID, city string, basePriceCents int64, hours OperatingHours) (*Ground, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Ground{
		id:             uuid.New(),
		name:           name,
		ownerID:        ownerID,
		city:           city,
		basePriceCents: basePriceCents,
		hours:          hours,
	}, nil
}

func ReconstructGround(id, ownerID uuid.UUID, name, city string, basePriceCents int64, hours OperatingHours, createdAt, updatedAt time.Time) *Ground {
	return &Ground{
		id:             id,
		name:           name,
		ownerID:        ownerID,
		city:           city,
		basePriceCents: basePriceCents,
		hours:          hours,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (g *Ground) ID() uuid.UUID         { return g.id }
func (g *Ground) Name() string          { return g.name }
func (g *Ground) OwnerID() uuid.UUID    { return g.ownerID }
func (g *Ground) City() string          { return g.city }
func (g *Ground) BasePriceCents() int64 { return g.basePriceCents }
func (g *Ground) Hours() OperatingHours { return g.hours }
func (g *Ground) CreatedAt() time.Time  { return g.createdAt }
func (g *Ground) UpdatedAt() time.Time  { return g.updatedAt }
