package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API result is wrapped in the same envelope: a success flag plus
// either the payload fields or a single error message.
//
//	{"success": true, "count": 2, "books": [...]}
//	{"success": false, "error": "Book not found"}

// Success writes the payload fields merged with {"success": true}.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error writes {"success": false, "error": message}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
