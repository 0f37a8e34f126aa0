package request

import (
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	GroundID  uuid.UUID `json:"ground_id" binding:"required"`
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required"`
	Comment   string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
