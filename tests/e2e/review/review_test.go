//go:build e2e

package review_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"turfbook/internal/domain/user"
	"turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/tests/common/authtest"
	"turfbook/tests/common/dbtest"
	"turfbook/tests/common/httptest"
	"turfbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const reviewsURL = "/api/reviews"

type reviewSuite struct {
	e2e.SharedSuite

	ownerID   uuid.UUID
	playerID  uuid.UUID
	groundID  uuid.UUID
	bookingID uuid.UUID

	playerToken string
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.ownerID = dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleAdmin))
	s.groundID = dbtest.CreateTestGround(s.T(), s.DB, s.ownerID, "Central Turf Arena", "Pune", 150000, "09:00", "22:00")

	s.playerID = dbtest.CreateTestUser(s.T(), s.DB, "player@example.com", string(user.RolePlayer))
	s.playerToken = authtest.LoginUser(s.T(), s.Router, "player@example.com", "password123")

	// A confirmed booking in the past entitles the player to review.
	s.bookingID = dbtest.CreateTestBooking(s.T(), s.DB, s.groundID, s.playerID, "2024-05-10", "10:00", "11:00", "confirmed")
}

func (s *reviewSuite) createReview(rating int, comment string) *nethttptest.ResponseRecorder {
	body := request.CreateReviewRequest{
		GroundID:  s.groundID,
		BookingID: s.bookingID,
		Rating:    rating,
		Comment:   comment,
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, s.playerToken)
}

func (s *reviewSuite) createdID(rec *nethttptest.ResponseRecorder) string {
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var response map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().NotEmpty(response["id"])
	return response["id"]
}

func (s *reviewSuite) groundView() *resdto.GroundResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/grounds/"+s.groundID.String(), nil, "")
	var response resdto.GroundResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return &response
}

func (s *reviewSuite) TestCreateReview() {
	s.Run("finished confirmed booking entitles a review", func() {
		rec := s.createReview(5, "Great pitch, well maintained")
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		url := fmt.Sprintf("/api/grounds/%s/reviews", s.groundID)
		listRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")

		var reviews []*resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), listRec, http.StatusOK, &reviews)
		s.Require().Len(reviews, 1)
		s.Equal(5, reviews[0].Rating)
		s.Equal("player@example.com", reviews[0].UserEmail)
	})

	s.Run("review updates the ground rating stats", func() {
		rec := s.createReview(4, "Good lighting for evening games")
		s.Require().Equal(http.StatusCreated, rec.Code)

		view := s.groundView()
		s.Equal(int64(1), view.ReviewCount)
		s.InDelta(4.0, view.AverageRating, 0.001)
	})

	s.Run("a booking yields at most one review", func() {
		s.Require().Equal(http.StatusCreated, s.createReview(5, "First impression").Code)

		rec := s.createReview(3, "Changed my mind")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has a review")
	})

	s.Run("a pending booking does not entitle a review", func() {
		pendingID := dbtest.CreateTestBooking(s.T(), s.DB, s.groundID, s.playerID, "2024-06-01", "12:00", "13:00", "pending")

		body := request.CreateReviewRequest{
			GroundID:  s.groundID,
			BookingID: pendingID,
			Rating:    4,
			Comment:   "Should not be allowed",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, s.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("another player's booking does not entitle a review", func() {
		strangerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "stranger@example.com", string(user.RolePlayer))

		body := request.CreateReviewRequest{
			GroundID:  s.groundID,
			BookingID: s.bookingID,
			Rating:    4,
			Comment:   "Not my booking",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, body, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *reviewSuite) TestUpdateAndDeleteReview() {
	s.Run("author can update the review and stats follow", func() {
		reviewID := s.createdID(s.createReview(5, "Great pitch"))

		body := request.UpdateReviewRequest{Rating: 2, Comment: "Surface degraded since my last visit"}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reviewsURL+"/"+reviewID, body, s.playerToken)
		s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		view := s.groundView()
		s.InDelta(2.0, view.AverageRating, 0.001)
	})

	s.Run("another player cannot update the review", func() {
		reviewID := s.createdID(s.createReview(5, "Great pitch"))

		strangerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "stranger@example.com", string(user.RolePlayer))
		body := request.UpdateReviewRequest{Rating: 1, Comment: "Vandalism"}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, reviewsURL+"/"+reviewID, body, strangerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("author can delete the review and stats reset", func() {
		reviewID := s.createdID(s.createReview(5, "Great pitch"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, s.playerToken)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		view := s.groundView()
		s.Equal(int64(0), view.ReviewCount)
	})

	s.Run("an admin can delete any review", func() {
		reviewID := s.createdID(s.createReview(5, "Great pitch"))

		adminToken := authtest.LoginUser(s.T(), s.Router, "owner@example.com", "password123")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, reviewsURL+"/"+reviewID, nil, adminToken)
		s.Require().Equal(http.StatusNoContent, rec.Code)
	})
}
