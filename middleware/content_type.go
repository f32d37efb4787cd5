package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireContentType answers 415 unless the request declares the given media
// type. Parameters such as charset are ignored.
func RequireContentType(mediaType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != mediaType {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "Content-Type must be " + mediaType,
			})
			return
		}
		c.Next()
	}
}

// RequireJSON is RequireContentType for application/json.
func RequireJSON() gin.HandlerFunc {
	return RequireContentType(gin.MIMEJSON)
}
