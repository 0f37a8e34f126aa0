package booking

import (
	"strings"
	"time"

	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingGround     = errs.New("ground reference is required")
	ErrMissingUser       = errs.New("user reference is required")
	ErrEmptyDate         = errs.New("booking date is required")
	ErrEmptySlotTimes    = errs.New("booking start and end times are required")
	ErrProofRequired     = errs.New("proof of payment reference is required")
	ErrNegativePrice     = errs.New("booking price cannot be negative")
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrInvalidTransition = errs.New("booking status does not permit this transition")
)

// Booking is a reservation of one slot on one ground for one calendar day.
// The date is an opaque day key; start and end are slot boundaries produced
// by the ground's operating-hours schedule.
type Booking struct {
	id         uuid.UUID
	groundID   uuid.UUID
	userID     uuid.UUID
	date       string
	startTime  string
	endTime    string
	priceCents int64
	proofRef   string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(groundID, userID uuid.UUID, date, startTime, endTime string, priceCents int64, proofRef string, now time.Time) (*Booking, error) {
	if groundID == uuid.Nil {
		return nil, ErrMissingGround
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if strings.TrimSpace(date) == "" {
		return nil, ErrEmptyDate
	}
	if strings.TrimSpace(startTime) == "" || strings.TrimSpace(endTime) == "" {
		return nil, ErrEmptySlotTimes
	}
	if strings.TrimSpace(proofRef) == "" {
		return nil, ErrProofRequired
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		groundID:   groundID,
		userID:     userID,
		date:       date,
		startTime:  startTime,
		endTime:    endTime,
		priceCents: priceCents,
		proofRef:   proofRef,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(id, groundID, userID uuid.UUID, date, startTime, endTime string, priceCents int64, proofRef string, status Status, createdAt, updatedAt time.Time) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:         id,
		groundID:   groundID,
		userID:     userID,
		date:       date,
		startTime:  startTime,
		endTime:    endTime,
		priceCents: priceCents,
		proofRef:   proofRef,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// TransitionTo applies one edge of the state machine. A rejected transition
// leaves the booking unchanged.
func (b *Booking) TransitionTo(target Status, now time.Time) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool { return b.status.IsActive() }

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) GroundID() uuid.UUID  { return b.groundID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Date() string         { return b.date }
func (b *Booking) StartTime() string    { return b.startTime }
func (b *Booking) EndTime() string      { return b.endTime }
func (b *Booking) PriceCents() int64    { return b.priceCents }
func (b *Booking) ProofRef() string     { return b.proofRef }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
