package response

import (
	"time"

	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	GroundID   uuid.UUID `json:"groundId"`
	GroundName string    `json:"groundName"`
	UserID     uuid.UUID `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	ProofRef   string    `json:"proofRef"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	GroundID   uuid.UUID `json:"groundId"`
	GroundName string    `json:"groundName"`
	UserEmail  string    `json:"userEmail"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ScheduleSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Taken     bool   `json:"taken"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromScheduleSlot(v *queries.ScheduleSlot) *ScheduleSlotResponse {
	return &ScheduleSlotResponse{
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Taken:     v.Taken,
	}
}
