package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin dashboard endpoints.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
