package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/config"
)

// CORSMiddleware admits browser origins matching config.AllowedOriginPrefixes.
func CORSMiddleware() gin.HandlerFunc {
	prefixes := config.AllowedOriginPrefixes
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, p := range prefixes {
				if strings.HasPrefix(origin, p) {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
