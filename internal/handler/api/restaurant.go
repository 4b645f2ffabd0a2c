package api

import (
	"net/http"
	"time"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RestaurantHandler struct {
	q     queries.RestaurantQueries
	avail queries.AvailabilityQueries
	clock clock.Clock
	loc   *time.Location
}

func NewRestaurantHandler(q queries.RestaurantQueries, avail queries.AvailabilityQueries, clk clock.Clock, cfg config.Config) *RestaurantHandler {
	return &RestaurantHandler{q: q, avail: avail, clock: clk, loc: cfg.Booking.Location()}
}

// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} resdto.RestaurantResponse
// @Failure 500 {object} httperr.Response
// @Router /api/restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantList(views))
}

// @Summary Get restaurant
// @Description Get a restaurant with the size of its largest table
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	detail, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantDetail(detail))
}

// @Summary Available times
// @Description Slot starts of the day with the largest bookable table per slot
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "Day (YYYY-MM-DD) in the booking time zone"
// @Param partySize query int true "Party size"
// @Success 200 {array} resdto.AvailableTimeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/restaurants/{id}/available-times [get]
func (h *RestaurantHandler) AvailableTimes(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	var q reqdto.AvailableTimesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	day, err := q.Day(h.loc)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	times, err := h.avail.GetAvailableTimes(c.Request.Context(), id, day, q.PartySize)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAvailableTimes(times)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Current menus
// @Description Menus served at the given instant (default now) with their items
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param at query string false "RFC 3339 instant"
// @Success 200 {array} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id}/menus [get]
func (h *RestaurantHandler) CurrentMenus(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	var q reqdto.CurrentMenusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	at, err := q.AtOr(h.clock.Now())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	menus, err := h.q.CurrentMenus(c.Request.Context(), id, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromMenuViews(menus)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary All menus
// @Description Every menu of the restaurant regardless of serving window
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.MenuResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id}/menus/all [get]
func (h *RestaurantHandler) AllMenus(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	menus, err := h.q.AllMenus(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromMenuViews(menus)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Past restaurants
// @Description Restaurants where the caller has a reservation that already ended
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RestaurantResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/restaurants/past [get]
func (h *RestaurantHandler) PastVisits(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	views, err := h.q.PastVisits(c.Request.Context(), userID, h.clock.Now())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantList(views))
}

// @Summary List tables
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.TableResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id}/tables [get]
func (h *RestaurantHandler) Tables(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	tables, err := h.q.Tables(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromTableViews(tables)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List ingredients
// @Description Ingredients reachable through the restaurant's menus
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Success 200 {array} resdto.IngredientResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/restaurants/{id}/ingredients [get]
func (h *RestaurantHandler) Ingredients(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	ingredients, err := h.q.Ingredients(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromIngredientViews(ingredients)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func restaurantID(c *gin.Context) (uuid.UUID, bool) {
	return uuidParam(c, "id", "Invalid restaurant id")
}

func uuidParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
