package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/ground"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGroundNotFound          = errs.New("ground not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidSlot             = errs.New("slot does not match the ground schedule")
	ErrProofMissing            = errs.New("proof of payment is required")
	ErrSlotTaken               = errs.New("slot already has an active booking")
	ErrNotGroundOwner          = errs.New("booking belongs to another admin's ground")
	ErrInvalidTransition       = errs.New("booking status does not permit this transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrProofStoreFailed        = errs.New("failed to store proof of payment")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ProofStore persists an uploaded proof-of-payment and returns a stable
// reference. Content is stored opaquely, never inspected.
type ProofStore interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}

type RequestBookingInput struct {
	GroundID      uuid.UUID
	Date          string
	StartTime     string
	EndTime       string
	ProofFilename string
	Proof         io.Reader
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, input RequestBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	Confirm(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error)
	Reject(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	proofs         ProofStore
	notifications  shared.NotificationSink
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	proofs ProofStore,
	notifications shared.NotificationSink,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		proofs:         proofs,
		notifications:  notifications,
		clock:          clk,
	}
}

func (uc *bookingUseCaseImpl) RequestBooking(ctx context.Context, input RequestBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
	groundSnap, err := uc.loadGround(ctx, input.GroundID)
	if err != nil {
		return nil, err
	}

	hours, err := ground.NewOperatingHours(groundSnap.OpenTime, groundSnap.CloseTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !hours.ContainsSlot(input.StartTime, input.EndTime) {
		return nil, ErrInvalidSlot
	}

	if input.Proof == nil {
		return nil, ErrProofMissing
	}

	// Point-in-time courtesy check; the partial unique index on active
	// bookings is what actually serializes concurrent requests.
	taken, err := uc.uow.CommandReads().ActiveSlotExists(ctx, input.GroundID, input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	// Saved only once the slot still looks free, so a taken slot never
	// leaves a stray file behind.
	proofRef, err := uc.proofs.Save(ctx, input.ProofFilename, input.Proof)
	if err != nil {
		return nil, errs.Mark(err, ErrProofStoreFailed)
	}

	entity, err := booking.NewBooking(
		input.GroundID, userID,
		input.Date, input.StartTime, input.EndTime,
		groundSnap.BasePriceCents, proofRef,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if txErr != nil {
			return txErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotTaken
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrGroundNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.publish(ctx, bookingID, booking.StatusPending, groundSnap.OwnerID)
	return view, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, actingAdminID, booking.StatusConfirmed)
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, actingAdminID, booking.StatusRejected)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, bookingID, actingAdminID, booking.StatusCancelled)
}

// transition runs one admin edge of the state machine. The row lock makes
// the ownership check, the transition check and the guarded update observe
// a single consistent state; a lost race surfaces as ErrInvalidTransition.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID, actingAdminID uuid.UUID, target booking.Status) (*queries.BookingView, error) {
	var recipient uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return txErr
		}

		groundSnap, txErr := tx.Reads().GroundByID(ctx, snap.GroundID)
		if txErr != nil {
			return txErr
		}
		if groundSnap.OwnerID != actingAdminID {
			return ErrNotGroundOwner
		}

		entity, txErr := booking.ReconstructBooking(
			snap.ID, snap.GroundID, snap.UserID,
			snap.Date, snap.StartTime, snap.EndTime,
			snap.PriceCents, snap.ProofRef, snap.Status,
			snap.CreatedAt, snap.UpdatedAt,
		)
		if txErr != nil {
			return txErr
		}
		if txErr = entity.TransitionTo(target, uc.clock.Now()); txErr != nil {
			return errs.Mark(txErr, ErrInvalidTransition)
		}

		affected, txErr := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, snap.Status, target, uc.clock.Now())
		if txErr != nil {
			return txErr
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		recipient = snap.UserID
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrNotGroundOwner), errors.Is(err, ErrInvalidTransition):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.publish(ctx, bookingID, target, recipient)
	return view, nil
}

func (uc *bookingUseCaseImpl) loadGround(ctx context.Context, groundID uuid.UUID) (*shared.GroundSnapshot, error) {
	snap, err := uc.uow.CommandReads().GroundByID(ctx, groundID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroundNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

// publish is fire-and-forget: a failed notification never undoes the
// ledger write that caused it.
func (uc *bookingUseCaseImpl) publish(ctx context.Context, bookingID uuid.UUID, status booking.Status, recipient uuid.UUID) {
	err := uc.notifications.Publish(ctx, shared.Notification{
		BookingID:   bookingID,
		Status:      status.String(),
		RecipientID: recipient,
	})
	if err != nil {
		slog.Warn("failed to publish booking notification",
			"booking_id", bookingID,
			"status", status.String(),
			"error", err.Error())
	}
}
