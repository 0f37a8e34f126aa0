//go:build e2e

package booking_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"turfbook/internal/domain/user"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/tests/common/authtest"
	"turfbook/tests/common/dbtest"
	"turfbook/tests/common/httptest"
	"turfbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	adminURL    = "/api/admin/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite

	ownerID  uuid.UUID
	groundID uuid.UUID

	playerToken string
	ownerToken  string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.ownerID = dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleAdmin))
	s.groundID = dbtest.CreateTestGround(s.T(), s.DB, s.ownerID, "Central Turf Arena", "Pune", 150000, "09:00", "22:00")

	s.playerToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "player@example.com", string(user.RolePlayer))
	s.ownerToken = authtest.LoginUser(s.T(), s.Router, "owner@example.com", "password123")
}

func (s *bookingSuite) requestBooking(token, startTime, endTime string) *resdto.BookingResponse {
	fields := map[string]string{
		"ground_id":  s.groundID.String(),
		"date":       "2026-09-15",
		"start_time": startTime,
		"end_time":   endTime,
	}
	files := map[string][]byte{"screenshot": []byte("fake payment screenshot")}

	rec := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, bookingsURL, fields, files, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var response resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

func (s *bookingSuite) transition(token string, bookingID uuid.UUID, action string) *nethttptest.ResponseRecorder {
	url := fmt.Sprintf("%s/%s/%s", adminURL, bookingID, action)
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, token)
}

func (s *bookingSuite) TestBookingLifecycle() {
	s.Run("player requests a slot and sees it pending", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")
		s.Equal("pending", created.Status)
		s.Equal(int64(150000), created.PriceCents)
		s.NotEmpty(created.ProofRef)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, s.playerToken)
		var mine []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &mine)
		s.Require().Len(mine, 1)
		s.Equal(created.ID, mine[0].ID)
	})

	s.Run("day schedule marks the requested slot as taken", func() {
		s.requestBooking(s.playerToken, "10:00", "11:00")

		url := fmt.Sprintf("/api/grounds/%s/slots?date=2026-09-15", s.groundID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, "")

		var slots []*resdto.ScheduleSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &slots)
		s.Require().Len(slots, 13)
		for _, slot := range slots {
			s.Equal(slot.StartTime == "10:00", slot.Taken, "slot %s", slot.StartTime)
		}
	})

	s.Run("a second request for the same slot conflicts", func() {
		s.requestBooking(s.playerToken, "10:00", "11:00")

		rivalToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "rival@example.com", string(user.RolePlayer))
		fields := map[string]string{
			"ground_id":  s.groundID.String(),
			"date":       "2026-09-15",
			"start_time": "10:00",
			"end_time":   "11:00",
		}
		files := map[string][]byte{"screenshot": []byte("another screenshot")}
		rec := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, bookingsURL, fields, files, rivalToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "active booking")
	})

	s.Run("misaligned slot is rejected", func() {
		fields := map[string]string{
			"ground_id":  s.groundID.String(),
			"date":       "2026-09-15",
			"start_time": "10:30",
			"end_time":   "11:30",
		}
		files := map[string][]byte{"screenshot": []byte("screenshot")}
		rec := httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, bookingsURL, fields, files, s.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "schedule")
	})

	s.Run("owner confirms a pending booking", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")

		rec := s.transition(s.ownerToken, created.ID, "confirm")
		var confirmed resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &confirmed)
		s.Equal("confirmed", confirmed.Status)

		pendingRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL+"/pending", nil, s.ownerToken)
		var pending []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), pendingRec, http.StatusOK, &pending)
		s.Empty(pending)

		confirmedRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminURL+"/confirmed", nil, s.ownerToken)
		var confirmedList []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), confirmedRec, http.StatusOK, &confirmedList)
		s.Require().Len(confirmedList, 1)
	})

	s.Run("confirming twice conflicts", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")

		s.Require().Equal(http.StatusOK, s.transition(s.ownerToken, created.ID, "confirm").Code)
		rec := s.transition(s.ownerToken, created.ID, "confirm")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("a foreign admin cannot rule on the booking", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")

		foreignToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "foreign@example.com", string(user.RoleAdmin))
		rec := s.transition(foreignToken, created.ID, "confirm")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("a player cannot reach the admin endpoints", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")

		rec := s.transition(s.playerToken, created.ID, "confirm")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("rejecting frees the slot for rebooking", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")
		s.Require().Equal(http.StatusOK, s.transition(s.ownerToken, created.ID, "reject").Code)

		rebooked := s.requestBooking(s.playerToken, "10:00", "11:00")
		s.NotEqual(created.ID, rebooked.ID)
	})

	s.Run("cancelling a confirmed booking frees the slot", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")
		s.Require().Equal(http.StatusOK, s.transition(s.ownerToken, created.ID, "confirm").Code)

		rec := s.transition(s.ownerToken, created.ID, "cancel")
		var cancelled resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.Status)

		s.requestBooking(s.playerToken, "10:00", "11:00")
	})

	s.Run("a pending booking cannot be cancelled", func() {
		created := s.requestBooking(s.playerToken, "10:00", "11:00")

		rec := s.transition(s.ownerToken, created.ID, "cancel")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// The partial unique index on active bookings is the arbiter under
// concurrency: any number of simultaneous requests for one slot must
// produce exactly one pending booking.
func (s *bookingSuite) TestConcurrentRequestsForOneSlot() {
	s.Run("exactly one of many concurrent requests wins", func() {
		const attempts = 8

		var wg sync.WaitGroup
		codes := make(chan int, attempts)

		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()

				var buf bytes.Buffer
				mw := multipart.NewWriter(&buf)
				_ = mw.WriteField("ground_id", s.groundID.String())
				_ = mw.WriteField("date", "2026-09-15")
				_ = mw.WriteField("start_time", "18:00")
				_ = mw.WriteField("end_time", "19:00")
				fw, err := mw.CreateFormFile("screenshot", "proof.png")
				if err != nil {
					codes <- 0
					return
				}
				_, _ = fw.Write([]byte("concurrent screenshot"))
				_ = mw.Close()

				req := nethttptest.NewRequest(http.MethodPost, bookingsURL, &buf)
				req.Header.Set("Content-Type", mw.FormDataContentType())
				req.Header.Set("Authorization", "Bearer "+s.playerToken)

				rec := nethttptest.NewRecorder()
				s.Router.ServeHTTP(rec, req)
				codes <- rec.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, created)
		s.Equal(attempts-1, conflicted)

		var active int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT COUNT(*) FROM bookings WHERE ground_id = $1 AND date = '2026-09-15' AND start_time = '18:00' AND status IN ('pending', 'confirmed')",
			s.groundID).Scan(&active)
		s.Require().NoError(err)
		s.Equal(1, active)
	})
}

func (s *bookingSuite) TestGroundOnboarding() {
	newGround := func() map[string]any {
		return map[string]any{
			"name":             "Riverside Turf Park",
			"city":             "Mumbai",
			"base_price_cents": 120000,
			"open_time":        "08:00",
			"close_time":       "21:00",
		}
	}

	s.Run("owner onboards a ground and it shows up in listings", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", newGround(), s.ownerToken)

		var created resdto.GroundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Equal("Riverside Turf Park", created.Name)
		s.Equal("Mumbai", created.City)
		s.Equal(int64(120000), created.BasePriceCents)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/grounds?city=Mumbai", nil, "")
		var listed []*resdto.GroundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(created.ID, listed[0].ID)
	})

	s.Run("duplicate ground name conflicts", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", newGround(), s.ownerToken)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", newGround(), s.ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("closing before opening is rejected", func() {
		body := newGround()
		body["open_time"] = "21:00"
		body["close_time"] = "08:00"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", body, s.ownerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("players cannot onboard grounds", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", newGround(), s.playerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("a booking lands on the onboarded ground", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/grounds", newGround(), s.ownerToken)
		var created resdto.GroundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		fields := map[string]string{
			"ground_id":  created.ID.String(),
			"date":       "2026-09-15",
			"start_time": "08:00",
			"end_time":   "09:00",
		}
		files := map[string][]byte{"screenshot": []byte("fake payment screenshot")}
		rec = httptest.PerformMultipartRequest(s.T(), s.Router, http.MethodPost, bookingsURL, fields, files, s.playerToken)

		var booked resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.Equal("pending", booked.Status)
		s.Equal(int64(120000), booked.PriceCents)
	})
}
