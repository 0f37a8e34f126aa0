package api

import (
	"context"
	"errors"
	"net/http"

	"turfbook/internal/domain/booking"
	reqdto "turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves ground owners: onboarding new grounds, dashboards
// over their own ground's bookings and the three ruling actions of the
// state machine.
type AdminHandler struct {
	bookingCommands commands.BookingCommands
	groundCommands  commands.GroundCommands
	bookingQueries  queries.BookingQueries
}

func NewAdminHandler(
	bookingCommands commands.BookingCommands,
	groundCommands commands.GroundCommands,
	bookingQueries queries.BookingQueries,
) *AdminHandler {
	return &AdminHandler{
		bookingCommands: bookingCommands,
		groundCommands:  groundCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create ground
// @Description Onboard a new ground owned by the authenticated admin
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGroundRequest true "Ground details"
// @Success 201 {object} resdto.GroundResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/grounds [post]
func (h *AdminHandler) CreateGround(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateGroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.groundCommands.CreateGround(c.Request.Context(), commands.CreateGroundRequest{
		Name:           req.Name,
		City:           req.City,
		BasePriceCents: req.BasePriceCents,
		OpenTime:       req.OpenTime,
		CloseTime:      req.CloseTime,
	}, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGroundNameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A ground with this name already exists",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGroundView(view))
}

// @Summary Pending bookings
// @Description Pending bookings on the admin's grounds
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/pending [get]
func (h *AdminHandler) ListPending(c *gin.Context) {
	h.listByStatus(c, booking.StatusPending)
}

// @Summary Confirmed bookings
// @Description Confirmed bookings on the admin's grounds
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/confirmed [get]
func (h *AdminHandler) ListConfirmed(c *gin.Context) {
	h.listByStatus(c, booking.StatusConfirmed)
}

func (h *AdminHandler) listByStatus(c *gin.Context, status booking.Status) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByOwnerAndStatus(c.Request.Context(), adminID, status)
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

// @Summary Confirm booking
// @Description Confirm a pending booking on the admin's ground
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/confirm [post]
func (h *AdminHandler) Confirm(c *gin.Context) {
	h.transition(c, h.bookingCommands.Confirm)
}

// @Summary Reject booking
// @Description Reject a pending booking on the admin's ground
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/reject [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	h.transition(c, h.bookingCommands.Reject)
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking on the admin's ground
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookingCommands.Cancel)
}

type transitionFunc func(ctx context.Context, bookingID, actingAdminID uuid.UUID) (*queries.BookingView, error)

func (h *AdminHandler) transition(c *gin.Context, fn transitionFunc) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), bookingID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrNotGroundOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking belongs to another ground",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking status does not permit this transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
