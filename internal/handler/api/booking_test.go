//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"turfbook/internal/handler/api"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	"turfbook/tests/common/httptest"
	commandsmock "turfbook/tests/mock/commands"
	queriesmock "turfbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	authedUserID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Stand-in for the auth middleware
	authed := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authedUserID)
		}
		c.Next()
	}
	s.router.POST("/bookings", authed, s.handler.Create)
	s.router.GET("/bookings", authed, s.handler.ListMine)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingForm(groundID uuid.UUID) map[string]string {
	return map[string]string{
		"ground_id":  groundID.String(),
		"date":       "2026-09-15",
		"start_time": "10:00",
		"end_time":   "11:00",
	}
}

func (s *BookingHandlerTestSuite) proofFile() map[string][]byte {
	return map[string][]byte{"screenshot": []byte("fake image bytes")}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	groundID := uuid.New()

	s.Run("success: returns 201 Created with the pending booking", func() {
		view := builder.NewBookingBuilder().
			WithGroundID(groundID).
			WithUserID(s.authedUserID).
			BuildView()
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.authedUserID).
			DoAndReturn(func(_ any, input commands.RequestBookingInput, _ uuid.UUID) (*queries.BookingView, error) {
				s.Equal(groundID, input.GroundID)
				s.Equal("2026-09-15", input.Date)
				s.Equal("10:00", input.StartTime)
				s.Equal("11:00", input.EndTime)
				s.Equal("screenshot.png", input.ProofFilename)
				s.NotNil(input.Proof)
				return view, nil
			}).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			s.bookingForm(groundID), s.proofFile(), "some-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request without the screenshot part", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			s.bookingForm(groundID), nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "screenshot is required")
	})

	s.Run("error: 400 Bad Request on missing form fields", func() {
		form := s.bookingForm(groundID)
		delete(form, "start_time")

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			form, s.proofFile(), "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 without auth context", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			s.bookingForm(groundID), s.proofFile(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name          string
			commandsError error
			expectCode    int
		}{
			{name: "unknown ground", commandsError: commands.ErrGroundNotFound, expectCode: http.StatusNotFound},
			{name: "slot outside the schedule", commandsError: commands.ErrInvalidSlot, expectCode: http.StatusBadRequest},
			{name: "proof missing", commandsError: commands.ErrProofMissing, expectCode: http.StatusBadRequest},
			{name: "slot already taken", commandsError: commands.ErrSlotTaken, expectCode: http.StatusConflict},
			{name: "domain validation failure", commandsError: commands.ErrDomainValidation, expectCode: http.StatusBadRequest},
			{name: "unexpected failure", commandsError: errs.New("db down"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					RequestBooking(gomock.Any(), gomock.Any(), s.authedUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
					s.bookingForm(groundID), s.proofFile(), "some-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	s.Run("success: returns the user's bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().WithUserID(s.authedUserID).BuildListItem(),
			builder.NewBookingBuilder().WithUserID(s.authedUserID).AsConfirmed().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("pending", response[0].Status)
		s.Equal("confirmed", response[1].Status)
	})

	s.Run("success: empty history yields an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 Internal Server Error when the query fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
