package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	GroundID   uuid.UUID `json:"ground_id"`
	GroundName string    `json:"ground_name"`
	UserID     uuid.UUID `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	ProofRef   string    `json:"proof_ref"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	GroundID   uuid.UUID `json:"ground_id"`
	GroundName string    `json:"ground_name"`
	UserEmail  string    `json:"user_email"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActiveSlot is one occupied slot of a ground's day: a booking that still
// blocks the calendar (pending or confirmed).
type ActiveSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// ScheduleSlot is one entry of the full day schedule, taken or free.
type ScheduleSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Taken     bool   `json:"taken"`
}

type GroundView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	BasePriceCents int64     `json:"base_price_cents"`
	OpenTime       string    `json:"open_time"`
	CloseTime      string    `json:"close_time"`
	AverageRating  float64   `json:"average_rating"`
	ReviewCount    int64     `json:"review_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	GroundID  uuid.UUID `json:"ground_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
}

type ChatMessageView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
