package commands

import (
	"context"
	"time"

	domreview "turfbook/internal/domain/review"
	"turfbook/internal/domain/user"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrDuplicateReview     = errs.New("duplicate review for booking")
	ErrReviewNotFoundWrite = errs.New("review not found")
)

type CreateReviewRequest struct {
	GroundID  uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	services := &domreview.Services{
		Clock:              uc.clock,
		EligibilityChecker: uc,
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, derr := domreview.NewReview(ctx, services, userID, req.GroundID, req.BookingID, rating, comment)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return derr
		}
		createdID = id
		return tx.RatingStats().RecalcGroundRatingStats(ctx, tx.DB(), req.GroundID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return err
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		agg := domreview.ReconstructReview(snap.ID, snap.UserID, snap.GroundID, snap.BookingID, rating, comment, uc.clock.Now(), uc.clock.Now())
		if derr = tx.Reviews().Update(ctx, tx.DB(), reviewID, agg); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcGroundRatingStats(ctx, tx.DB(), snap.GroundID)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return derr
		}
		if actorRole != user.RoleAdmin.String() && snap.UserID != actorID {
			return ErrReviewNotOwned
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcGroundRatingStats(ctx, tx.DB(), snap.GroundID)
	})
}

// EligibilityChecker implementation: the booking must belong to the
// reviewer, sit on the reviewed ground, be confirmed and already played.
func (uc *reviewUseCaseImpl) CanPostReview(ctx context.Context, input domreview.EligibilityInput) error {
	snap, err := uc.uow.CommandReads().BookingByID(ctx, input.BookingID)
	if err != nil {
		return err
	}
	if snap.UserID != input.UserID || snap.GroundID != input.GroundID {
		return domreview.ErrBookingNotEligible
	}
	if snap.Status != "confirmed" {
		return domreview.ErrBookingNotEligible
	}
	if !bookingEnded(snap.Date, snap.EndTime, input.Now) {
		return domreview.ErrBookingNotEligible
	}
	return nil
}

// bookingEnded treats an unparseable day key as not yet ended.
func bookingEnded(date, endTime string, now time.Time) bool {
	end, err := time.Parse("2006-01-02 15:04", date+" "+endTime)
	if err != nil {
		return false
	}
	return end.Before(now)
}
