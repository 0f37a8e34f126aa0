package request

import (
	"github.com/google/uuid"
)

// CreateBookingRequest is bound from the multipart form; the proof
// screenshot travels as a separate file part named "screenshot".
type CreateBookingRequest struct {
	GroundID  uuid.UUID `form:"ground_id" binding:"required"`
	Date      string    `form:"date" binding:"required"`
	StartTime string    `form:"start_time" binding:"required"`
	EndTime   string    `form:"end_time" binding:"required"`
}
