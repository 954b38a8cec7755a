package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanjeevani/coordination-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes err with the HTTP status its taxonomy code maps to.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.ErrNotFound:
		status = http.StatusNotFound
	case errors.ErrValidation:
		status = http.StatusBadRequest
	case errors.ErrAuthentication:
		status = http.StatusUnauthorized
	case errors.ErrConflict:
		status = http.StatusConflict
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
