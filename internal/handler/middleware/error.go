package middleware

import (
	"log/slog"
	"net/http"

	"aparthotel-booking/internal/handler/httperr"
	"aparthotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			logAborted(c)
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					logServerError(c, resp.Status, err.Err)
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// logAborted reports 5xx errors of handlers that already wrote their response.
func logAborted(c *gin.Context) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
			logServerError(c, resp.Status, c.Errors[i].Err)
			return
		}
	}
}

func logServerError(c *gin.Context, status int, err error) {
	if status < http.StatusInternalServerError || err == nil {
		return
	}
	slog.Error("request failed",
		"request_id", GetRequestID(c),
		"status", status,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
}
