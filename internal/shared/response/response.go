package response

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success writes data as the bare JSON body.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message writes {"message": ..., <key>: data}.
func Message(c *gin.Context, status int, message string, key string, data any) {
	c.JSON(status, gin.H{
		"message": message,
		key:       data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

func AbortError(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error: message,
		Code:  errorCode,
	})
}
