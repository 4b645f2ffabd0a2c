package middleware

import (
	"log/slog"
	"net/http"

	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs server-side failures with a short stack and writes the
// last public error envelope when the handler did not respond itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", GetRequestID(c),
				"error", ginErr.Err.Error(),
				"stack", errs.ExtractStackLines(ginErr.Err, stackLines))
		}

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		switch {
		case c.Writer.Status() != http.StatusOK:
			c.Writer.WriteHeaderNow()
		case len(c.Errors) > 0:
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.JSON(resp.Status, resp)
		}
	}
}

// CustomRecovery turns a panic into the standard 500 envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
