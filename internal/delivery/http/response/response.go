package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform API envelope. Error bodies are exactly
// {success:false, error:"..."}; success bodies carry data and, for
// mutations, a message. Request correlation travels in the X-Request-ID
// header rather than the body.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error envelope
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}
