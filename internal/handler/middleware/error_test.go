//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/conflict", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errs.New("table is already reserved at this time"), errs.ErrConflict))
	})
	r.GET("/boom", func(c *gin.Context) {
		httperr.Abort(c, errs.New("connection reset"))
	})
	r.GET("/panic", func(_ *gin.Context) {
		panic("unexpected nil table")
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("client error keeps its message", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already reserved")
	})

	t.Run("server error hides internals", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
