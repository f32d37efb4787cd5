package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the key on mutating requests.
const APIKeyHeader = "X-Api-Key"

// ValidateAPIKey rejects requests whose X-Api-Key header does not match apiKey.
// An empty apiKey turns the check off.
func ValidateAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		given := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(given), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}
		c.Next()
	}
}
