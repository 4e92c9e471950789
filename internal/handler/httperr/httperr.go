// Package httperr carries the JSON error envelope from handlers to the error middleware.
package httperr

import (
	"aparthotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Message string `json:"message"`
}

type Response struct {
	Status int     `json:"-"`
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

// FieldDetail points a validation failure at one request field.
type FieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: Message{Message: msg}, Detail: detail}
}

// AbortWithError writes the envelope and keeps err on the context for the logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}
	resp := NewResponse(status, msg, detail)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}
