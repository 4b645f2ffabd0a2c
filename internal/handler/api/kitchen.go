package api

import (
	"net/http"
	"time"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type KitchenHandler struct {
	q   queries.KitchenQueries
	loc *time.Location
}

func NewKitchenHandler(q queries.KitchenQueries, cfg config.Config) *KitchenHandler {
	return &KitchenHandler{q: q, loc: cfg.Booking.Location()}
}

// @Summary Ingredient report
// @Description Ingredient totals for the window plus per-order totals bucketed by reservation start
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param start query string false "RFC 3339 window start"
// @Param end query string false "RFC 3339 window end"
// @Param confirmedOnly query bool false "Only confirmed reservations"
// @Success 200 {object} resdto.IngredientReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id}/kitchen/ingredients [get]
func (h *KitchenHandler) Ingredients(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	var q reqdto.IngredientReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := q.ToParams(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	desc, err := h.q.IngredientReport(c.Request.Context(), params)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationDesc(desc))
}

// @Summary Dishes over time
// @Description Ordered quantity per dish in 30 minute slots of the day
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string][]int
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/restaurants/{id}/kitchen/dishes [get]
func (h *KitchenHandler) Dishes(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	day, ok := h.bindDay(c)
	if !ok {
		return
	}

	series, err := h.q.DishesOverTime(c.Request.Context(), id, day)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary Capacity
// @Description Seats filled by confirmed reservations against the day's seat capacity
// @Tags kitchen
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} resdto.CapacityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/restaurants/{id}/kitchen/capacity [get]
func (h *KitchenHandler) Capacity(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	day, ok := h.bindDay(c)
	if !ok {
		return
	}

	info, err := h.q.CapacityInfo(c.Request.Context(), id, day)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCapacityInfo(info))
}

func (h *KitchenHandler) bindDay(c *gin.Context) (time.Time, bool) {
	var q reqdto.DayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return time.Time{}, false
	}
	day, err := q.Day(h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return time.Time{}, false
	}
	return day, true
}
