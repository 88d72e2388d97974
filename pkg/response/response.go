package response

import (
	"github.com/gin-gonic/gin"
)

// The wire format is intentionally flat: a "message" plus inline fields,
// matching what the frontend already parses. Structured envelopes would
// break existing clients.

// OK writes a success body with a message and optional extra fields.
func OK(c *gin.Context, status int, message string, fields gin.H) {
	body := gin.H{"message": message}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes {"message": ...}, optionally with a details map naming the
// fields that failed validation. Raw store errors are never serialized.
func Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"message": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
