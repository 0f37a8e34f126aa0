//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"turfbook/internal/handler/api"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
	"turfbook/tests/common/builder"
	"turfbook/tests/common/httptest"
	queriesmock "turfbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GroundHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockCtrl          *gomock.Controller
	mockGroundQueries *queriesmock.MockGroundQueries
	mockReviewQueries *queriesmock.MockReviewQueries
	handler           *api.GroundHandler
}

func (s *GroundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGroundQueries = queriesmock.NewMockGroundQueries(s.mockCtrl)
	s.mockReviewQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewGroundHandler(s.mockGroundQueries, s.mockReviewQueries)

	s.router.GET("/grounds", s.handler.List)
	s.router.GET("/grounds/:id", s.handler.Get)
	s.router.GET("/grounds/:id/slots", s.handler.DaySchedule)
	s.router.GET("/grounds/:id/reviews", s.handler.Reviews)
}

func (s *GroundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGroundHandlerSuite(t *testing.T) {
	suite.Run(t, new(GroundHandlerTestSuite))
}

func (s *GroundHandlerTestSuite) TestList() {
	s.Run("success: returns the full catalog without filters", func() {
		views := []*queries.GroundView{
			builder.NewGroundBuilder().BuildView(),
			builder.NewGroundBuilder().WithCity("Mumbai").BuildView(),
		}
		s.mockGroundQueries.EXPECT().List(gomock.Any(), queries.GroundFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds", nil, "")

		var response []*resdto.GroundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: forwards city filter and price sort", func() {
		s.mockGroundQueries.EXPECT().
			List(gomock.Any(), queries.GroundFilter{City: "Pune", Sort: queries.GroundSortPriceAsc}).
			Return([]*queries.GroundView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds?city=Pune&sort=price_asc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on unknown sort order", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds?sort=rating", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort order")
	})

	s.Run("error: 500 Internal Server Error when the query fails", func() {
		s.mockGroundQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *GroundHandlerTestSuite) TestGet() {
	s.Run("success: returns the ground with rating stats", func() {
		view := builder.NewGroundBuilder().BuildView()
		s.mockGroundQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds/"+view.ID.String(), nil, "")

		var response resdto.GroundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Name, response.Name)
		s.Equal(view.AverageRating, response.AverageRating)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: 404 Not Found for unknown ground", func() {
		unknownID := uuid.New()
		s.mockGroundQueries.EXPECT().GetByID(gomock.Any(), unknownID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "ground not found", errs.New("no rows"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/grounds/"+unknownID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ground not found")
	})
}

func (s *GroundHandlerTestSuite) TestDaySchedule() {
	groundID := uuid.New()
	url := fmt.Sprintf("/grounds/%s/slots?date=2026-09-15", groundID)

	s.Run("success: returns the slot grid with taken flags", func() {
		slots := []*queries.ScheduleSlot{
			{StartTime: "09:00", EndTime: "10:00", Taken: false},
			{StartTime: "10:00", EndTime: "11:00", Taken: true},
		}
		s.mockGroundQueries.EXPECT().DaySchedule(gomock.Any(), groundID, "2026-09-15").
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ScheduleSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.False(response[0].Taken)
		s.True(response[1].Taken)
	})

	s.Run("error: 400 Bad Request without date parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/grounds/%s/slots", groundID), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: 404 Not Found for unknown ground", func() {
		s.mockGroundQueries.EXPECT().DaySchedule(gomock.Any(), groundID, "2026-09-15").
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "ground not found", errs.New("no rows"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ground not found")
	})
}

func (s *GroundHandlerTestSuite) TestReviews() {
	groundID := uuid.New()
	url := "/grounds/" + groundID.String() + "/reviews"

	s.Run("success: returns reviews for the ground", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithGroundID(groundID).BuildView(),
			builder.NewReviewBuilder().WithGroundID(groundID).AsPoorRating().BuildView(),
		}
		s.mockReviewQueries.EXPECT().ListByGround(gomock.Any(), groundID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(1, response[1].Rating)
	})

	s.Run("error: 500 Internal Server Error when the query fails", func() {
		s.mockReviewQueries.EXPECT().ListByGround(gomock.Any(), groundID).
			Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
