package routes

import (
	"net/http"
	"time"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/middleware"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer needs, built once in main.
type Dependencies struct {
	Shopcarts      services.ShopcartService
	Products       services.ProductService
	Logger         *zap.Logger
	APIKey         string
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
}

// NewRouter is the single entry-point that builds the engine and wires up all routes.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	if len(deps.AllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(deps.AllowedOrigins)))
	}
	if deps.RateLimiter != nil {
		r.Use(middleware.RateLimit(deps.RateLimiter))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found: " + c.Request.URL.Path})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method " + c.Request.Method + " not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	SetupShopcartRoutes(r, deps)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}
