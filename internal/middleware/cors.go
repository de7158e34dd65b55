package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORSMiddleware allows the configured frontend origins. A single "*" entry
// opens the API to every origin; credentials are then disabled because
// browsers reject a wildcard origin with credentials.
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	switch {
	case len(origins) == 0:
		cfg.AllowOrigins = defaultOrigins
	case len(origins) == 1 && origins[0] == "*":
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	default:
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
