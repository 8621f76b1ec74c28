package http

import "github.com/gin-gonic/gin"

// All endpoints answer {success: bool, ...}; failures additionally carry a
// user-facing error string. The frontend keys off these exact shapes.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

func respondOutput(c *gin.Context, status int, output string) {
	c.JSON(status, gin.H{"success": true, "output": output})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}
