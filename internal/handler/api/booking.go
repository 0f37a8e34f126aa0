package api

import (
	"errors"
	"net/http"

	reqdto "turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxProofSizeBytes = 5 << 20

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Request booking
// @Description Request a slot booking with a proof-of-payment screenshot
// @Tags bookings
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param ground_id formData string true "Ground ID"
// @Param date formData string true "Day key"
// @Param start_time formData string true "Slot start HH:MM"
// @Param end_time formData string true "Slot end HH:MM"
// @Param screenshot formData file true "Proof of payment"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof of payment screenshot is required",
		})
		return
	}
	if fileHeader.Size > maxProofSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Proof of payment file is too large",
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read proof of payment",
		})
		return
	}
	defer file.Close()

	view, err := h.bookingCommands.RequestBooking(c.Request.Context(), commands.RequestBookingInput{
		GroundID:      req.GroundID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		ProofFilename: fileHeader.Filename,
		Proof:         file,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGroundNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ground not found",
			})
		case errors.Is(err, commands.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot does not match the ground schedule",
			})
		case errors.Is(err, commands.ErrProofMissing):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Proof of payment is required",
			})
		case errors.Is(err, commands.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot already has an active booking",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary My bookings
// @Description All bookings of the authenticated user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}
