package httperr

import (
	"net/http"

	"restaurant-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort picks the status from the error category. Client errors expose the
// error text; everything else is reported as an internal error.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}

var categoryStatus = map[error]int{
	errs.ErrNotFound:      http.StatusNotFound,
	errs.ErrValidation:    http.StatusBadRequest,
	errs.ErrConfiguration: http.StatusUnprocessableEntity,
	errs.ErrConflict:      http.StatusConflict,
	errs.ErrForbidden:     http.StatusForbidden,
}

func StatusOf(err error) int {
	if status, ok := categoryStatus[errs.CategoryOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
