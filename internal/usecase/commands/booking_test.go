//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/shared"
	"turfbook/tests/common/builder"
	commandsmock "turfbook/tests/mock/commands"
	queriesmock "turfbook/tests/mock/queries"
	sharedmock "turfbook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	bookingViews  *queriesmock.MockBookingQueries
	proofs        *commandsmock.MockProofStore
	notifications *sharedmock.MockNotificationSink
	clock         *clock.MockClock
	uc            commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.bookingViews = queriesmock.NewMockBookingQueries(s.ctrl)
	s.proofs = commandsmock.NewMockProofStore(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationSink(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uc = commands.NewBookingUseCase(s.uow, s.bookingViews, s.proofs, s.notifications, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) expectWithin() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func validInput(groundID uuid.UUID) commands.RequestBookingInput {
	return commands.RequestBookingInput{
		GroundID:      groundID,
		Date:          "2026-09-15",
		StartTime:     "10:00",
		EndTime:       "11:00",
		ProofFilename: "proof.png",
		Proof:         bytes.NewReader([]byte("png-bytes")),
	}
}

func (s *BookingCommandsTestSuite) TestRequestBooking() {
	groundSnap := builder.NewGroundBuilder().WithHours("09:00", "22:00").BuildSnapshot()
	userID := uuid.New()

	s.Run("success: pending booking created and owner notified", func() {
		input := validInput(groundSnap.ID)
		view := builder.NewBookingBuilder().WithGroundID(groundSnap.ID).WithUserID(userID).BuildView()

		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)
		s.proofs.EXPECT().Save(gomock.Any(), "proof.png", gomock.Any()).Return("/media/abc.png", nil)
		s.reads.EXPECT().ActiveSlotExists(gomock.Any(), groundSnap.ID, "2026-09-15", "10:00", "11:00").Return(false, nil)
		s.expectWithin()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.bookingViews.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
		s.notifications.EXPECT().Publish(gomock.Any(), shared.Notification{
			BookingID:   view.ID,
			Status:      booking.StatusPending.String(),
			RecipientID: groundSnap.OwnerID,
		}).Return(nil)

		got, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: unknown ground", func() {
		input := validInput(groundSnap.ID)
		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "ground not found", nil))

		_, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.ErrorIs(err, commands.ErrGroundNotFound)
	})

	s.Run("error: slot outside the schedule", func() {
		input := validInput(groundSnap.ID)
		input.StartTime = "10:30"
		input.EndTime = "11:30"
		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)

		_, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.ErrorIs(err, commands.ErrInvalidSlot)
	})

	s.Run("error: proof missing", func() {
		input := validInput(groundSnap.ID)
		input.Proof = nil
		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)

		_, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.ErrorIs(err, commands.ErrProofMissing)
	})

	s.Run("error: slot already held, proof never stored", func() {
		input := validInput(groundSnap.ID)
		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)
		s.reads.EXPECT().ActiveSlotExists(gomock.Any(), groundSnap.ID, "2026-09-15", "10:00", "11:00").Return(true, nil)
		// No Save expectation: a taken slot must not leave a stored proof.

		_, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("error: lost the insert race on the active slot index", func() {
		input := validInput(groundSnap.ID)
		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)
		s.proofs.EXPECT().Save(gomock.Any(), "proof.png", gomock.Any()).Return("/media/abc.png", nil)
		s.reads.EXPECT().ActiveSlotExists(gomock.Any(), groundSnap.ID, "2026-09-15", "10:00", "11:00").Return(false, nil)
		s.expectWithin()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate key", nil))

		_, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("success: notification failure does not undo the booking", func() {
		input := validInput(groundSnap.ID)
		view := builder.NewBookingBuilder().WithGroundID(groundSnap.ID).WithUserID(userID).BuildView()

		s.reads.EXPECT().GroundByID(gomock.Any(), groundSnap.ID).Return(groundSnap, nil)
		s.proofs.EXPECT().Save(gomock.Any(), "proof.png", gomock.Any()).Return("/media/abc.png", nil)
		s.reads.EXPECT().ActiveSlotExists(gomock.Any(), groundSnap.ID, "2026-09-15", "10:00", "11:00").Return(false, nil)
		s.expectWithin()
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.bookingViews.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
		s.notifications.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(infra.KindDBFailure, "redis unavailable", nil))

		got, err := s.uc.RequestBooking(context.Background(), input, userID)
		s.NoError(err)
		s.Equal(view, got)
	})
}

func (s *BookingCommandsTestSuite) TestConfirm() {
	owner := uuid.New()

	s.Run("success: pending booking confirmed and player notified", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(owner).BuildSnapshot()
		view := builder.NewBookingBuilder().WithID(snap.ID).WithStatus(booking.StatusConfirmed).BuildView()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusPending, booking.StatusConfirmed, gomock.Any()).Return(int64(1), nil)
		s.bookingViews.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)
		s.notifications.EXPECT().Publish(gomock.Any(), shared.Notification{
			BookingID:   snap.ID,
			Status:      booking.StatusConfirmed.String(),
			RecipientID: snap.UserID,
		}).Return(nil)

		got, err := s.uc.Confirm(context.Background(), snap.ID, owner)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: booking not found", func() {
		id := uuid.New()
		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil))

		_, err := s.uc.Confirm(context.Background(), id, owner)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: admin does not own the ground", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(uuid.New()).BuildSnapshot()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)

		_, err := s.uc.Confirm(context.Background(), snap.ID, owner)
		s.ErrorIs(err, commands.ErrNotGroundOwner)
	})

	s.Run("error: confirming a confirmed booking", func() {
		snap := builder.NewBookingBuilder().AsConfirmed().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(owner).BuildSnapshot()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)

		_, err := s.uc.Confirm(context.Background(), snap.ID, owner)
		s.ErrorIs(err, commands.ErrInvalidTransition)
	})

	s.Run("error: guarded update lost a concurrent race", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(owner).BuildSnapshot()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusPending, booking.StatusConfirmed, gomock.Any()).Return(int64(0), nil)

		_, err := s.uc.Confirm(context.Background(), snap.ID, owner)
		s.ErrorIs(err, commands.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	owner := uuid.New()

	s.Run("success: confirmed booking cancelled", func() {
		snap := builder.NewBookingBuilder().AsConfirmed().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(owner).BuildSnapshot()
		view := builder.NewBookingBuilder().WithID(snap.ID).AsCancelled().BuildView()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)
		s.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), snap.ID, booking.StatusConfirmed, booking.StatusCancelled, gomock.Any()).Return(int64(1), nil)
		s.bookingViews.EXPECT().GetByID(gomock.Any(), snap.ID).Return(view, nil)
		s.notifications.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := s.uc.Cancel(context.Background(), snap.ID, owner)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: cancelling a pending booking", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		ground := builder.NewGroundBuilder().WithID(snap.GroundID).WithOwnerID(owner).BuildSnapshot()

		s.expectWithin()
		s.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), snap.ID).Return(snap, nil)
		s.reads.EXPECT().GroundByID(gomock.Any(), snap.GroundID).Return(ground, nil)

		_, err := s.uc.Cancel(context.Background(), snap.ID, owner)
		s.ErrorIs(err, commands.ErrInvalidTransition)
	})
}
