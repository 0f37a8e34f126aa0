package api

import (
	"errors"
	"net/http"

	domreview "turfbook/internal/domain/review"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
}

func NewReviewHandler(reviewCommands commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
	}
}

// @Summary Create review
// @Description Post a review for a ground backed by a finished confirmed booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reviewCommands.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		GroundID:  req.GroundID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, domreview.ErrBookingNotEligible):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking does not entitle you to review this ground",
			})
		case errors.Is(err, commands.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already has a review",
			})
		case errors.Is(err, domreview.ErrInvalidRating), errors.Is(err, domreview.ErrCommentTooLong):
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

	c.JSON(http.StatusCreated, gin.H{"id": result.ReviewID})
}

// @Summary Update review
// @Description Update own review
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Review update"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reviewID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.reviewCommands.UpdateReview(c.Request.Context(), reviewID, commands.UpdateReviewRequest{
		Rating:  req.Rating,
		Comment: req.Comment,
	}, userID)
	if err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Delete own review (admins may delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	reviewID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reviewCommands.DeleteReview(c.Request.Context(), reviewID, userID, role.String()); err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReviewNotFoundWrite):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Review not found",
		})
	case errors.Is(err, commands.ErrReviewNotOwned):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Review belongs to another user",
		})
	case errors.Is(err, domreview.ErrInvalidRating), errors.Is(err, domreview.ErrCommentTooLong):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
