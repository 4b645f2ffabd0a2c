package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("unauthenticated request")

type ReservationHandler struct {
	cmds  commands.ReservationCommands
	q     queries.ReservationQueries
	clock clock.Clock
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, clk clock.Clock) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create reservation
// @Description Create a pending reservation for the caller
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreatePending(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Change reservation status
// @Description Move the caller's reservation to UNPAID, CONFIRMED or CANCELLED
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/status [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithReservation(c, userID, id)
}

// @Summary Add menu item
// @Description Order a dish for the reservation, adding to any existing quantity
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddMenuItemRequest true "Order line"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/items [post]
func (h *ReservationHandler) AddMenuItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req reqdto.AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.AddMenuItem(c.Request.Context(), id, req.MenuItemID, req.Quantity, userID); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWithReservation(c, userID, id)
}

// @Summary Reservation ticket
// @Description QR code identifying the reservation at the door
// @Tags reservations
// @Produce png
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/ticket [get]
func (h *ReservationHandler) Ticket(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := reservationID(c)
	if !ok {
		return
	}
	png, err := h.q.Ticket(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// @Summary Reservation menus
// @Description Menus served at the given instant (default now) with the quantities already ordered
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param at query string false "RFC 3339 instant"
// @Success 200 {array} resdto.ReservationMenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/menus [get]
func (h *ReservationHandler) Menus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := reservationID(c)
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

	menus, err := h.q.Menus(c.Request.Context(), userID, id, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromReservationMenuViews(menus)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) respondWithReservation(c *gin.Context, userID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func reservationID(c *gin.Context) (uuid.UUID, bool) {
	return uuidParam(c, "id", "Invalid reservation id")
}
