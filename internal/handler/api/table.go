package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	cmds commands.TableCommands
	q    queries.RestaurantQueries
}

func NewTableHandler(cmds commands.TableCommands, q queries.RestaurantQueries) *TableHandler {
	return &TableHandler{cmds: cmds, q: q}
}

// @Summary Replace tables
// @Description Replace every table of the restaurant in one transaction
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.BulkUpdateTablesRequest true "New table set"
// @Success 200 {array} resdto.TableResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/restaurants/{id}/tables [put]
func (h *TableHandler) BulkUpdate(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	var req reqdto.BulkUpdateTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	inputs, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if _, err := h.cmds.BulkUpdate(c.Request.Context(), id, inputs); err != nil {
		httperr.Abort(c, err)
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

// @Summary Delete table
// @Tags tables
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param tableId path string true "Table ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/restaurants/{id}/tables/{tableId} [delete]
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}
	tableID, ok := uuidParam(c, "tableId", "Invalid table id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, tableID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
