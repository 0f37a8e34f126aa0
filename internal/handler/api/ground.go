package api

import (
	"net/http"

	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/infra"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroundHandler struct {
	groundQueries queries.GroundQueries
	reviewQueries queries.ReviewQueries
}

func NewGroundHandler(groundQueries queries.GroundQueries, reviewQueries queries.ReviewQueries) *GroundHandler {
	return &GroundHandler{
		groundQueries: groundQueries,
		reviewQueries: reviewQueries,
	}
}

// @Summary List grounds
// @Description Ground catalog, optionally filtered by city and sorted by price
// @Tags grounds
// @Produce json
// @Param city query string false "Filter by city"
// @Param sort query string false "price_asc or price_desc"
// @Success 200 {array} resdto.GroundResponse
// @Failure 400 {object} map[string]string
// @Router /grounds [get]
func (h *GroundHandler) List(c *gin.Context) {
	sort, err := queries.ParseGroundSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort order",
		})
		return
	}

	views, err := h.groundQueries.List(c.Request.Context(), queries.GroundFilter{
		City: c.Query("city"),
		Sort: sort,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.GroundResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromGroundView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get ground
// @Description Ground detail with rating stats
// @Tags grounds
// @Produce json
// @Param id path string true "Ground ID"
// @Success 200 {object} resdto.GroundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /grounds/{id} [get]
func (h *GroundHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.groundQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ground not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGroundView(view))
}

// @Summary Day schedule
// @Description All slots of the ground's schedule for one day with taken/free flags
// @Tags grounds
// @Produce json
// @Param id path string true "Ground ID"
// @Param date query string true "Day key, e.g. 2026-09-01"
// @Success 200 {array} resdto.ScheduleSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /grounds/{id}/slots [get]
func (h *GroundHandler) DaySchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required",
		})
		return
	}

	slots, err := h.groundQueries.DaySchedule(c.Request.Context(), id, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ground not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ScheduleSlotResponse, len(slots))
	for i, s := range slots {
		response[i] = resdto.FromScheduleSlot(s)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Ground reviews
// @Description Reviews posted for a ground
// @Tags grounds
// @Produce json
// @Param id path string true "Ground ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /grounds/{id}/reviews [get]
func (h *GroundHandler) Reviews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.reviewQueries.ListByGround(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReviewResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReviewView(v)
	}
	c.JSON(http.StatusOK, response)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
