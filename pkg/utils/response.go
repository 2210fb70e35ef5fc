package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard envelope so the frontend always parses the
// same shape.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// PagedResponse is the envelope for list endpoints: data plus the page
// info and an echo of the filters that were applied.
func PagedResponse(c *gin.Context, data interface{}, pagination interface{}, appliedFilters map[string]interface{}) {
	body := gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	}
	if len(appliedFilters) > 0 {
		body["appliedFilters"] = appliedFilters
	}
	c.JSON(http.StatusOK, body)
}

// ErrorResponse reports a failure with the underlying error text kept
// for diagnostics alongside the human message.
func ErrorResponse(c *gin.Context, code int, err error, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
		"message": message,
	})
}
