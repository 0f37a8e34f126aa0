package shared

import (
	"context"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/ground"
	"turfbook/internal/domain/review"
	"turfbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: command-side reads outside an explicit transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Grounds() GroundRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Users() UserRepository
	Chat() ChatMessageRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	GroundByID(ctx context.Context, id uuid.UUID) (*GroundSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ActiveSlotExists(ctx context.Context, groundID uuid.UUID, date, startTime, endTime string) (bool, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
}

type GroundSnapshot struct {
	ID             uuid.UUID
	Name           string
	OwnerID        uuid.UUID
	City           string
	BasePriceCents int64
	OpenTime       string
	CloseTime      string
}

type BookingSnapshot struct {
	ID         uuid.UUID
	GroundID   uuid.UUID
	UserID     uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	PriceCents int64
	ProofRef   string
	Status     booking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GroundID  uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate takes a row lock so the status read and the guarded
	// update below observe the same state.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	// UpdateStatus only succeeds while the row still holds prior; returns
	// the number of rows changed.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, prior, next booking.Status, now time.Time) (int64, error)
}

type GroundRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *ground.Ground) (uuid.UUID, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcGroundRatingStats(ctx context.Context, tx db.DBTX, groundID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, email, passwordHash, role string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type ChatMessageRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, body string, now time.Time) (uuid.UUID, error)
}
