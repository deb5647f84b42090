package utils

import "github.com/gin-gonic/gin"

// The stub API mirrors the remote service's envelope: a success flag plus
// payload fields inlined at the top level.

// RespondOK writes a success envelope merged with the given payload fields.
func RespondOK(c *gin.Context, code int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(code, body)
}

// RespondError writes a failure envelope carrying the error message.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
