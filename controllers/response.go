package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// ReadPayload decodes the request body into an untyped JSON value.
func ReadPayload(c *gin.Context) (interface{}, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, models.NewDataValidationError("Failed to read request body: %v", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, models.NewDataValidationError("Invalid JSON: %v", err)
	}
	return payload, nil
}

// RespondError writes err as a JSON error body with the matching status.
func RespondError(c *gin.Context, err error) {
	var svcErr *services.ServiceError
	var valErr *models.DataValidationError
	switch {
	case errors.As(err, &svcErr):
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// LocationURL builds an absolute URL on this server from escaped path segments.
func LocationURL(c *gin.Context, segments ...string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return scheme + "://" + c.Request.Host + "/" + strings.Join(escaped, "/")
}
