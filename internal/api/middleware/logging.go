package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware tags each request with an id and logs one line when it
// finishes.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Header(RequestIDHeader, reqID)

		c.Next()

		log.Printf("[HTTP] %s %s %d %s id=%s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start), reqID)
		for _, e := range c.Errors {
			log.Printf("[HTTP] ERROR id=%s: %v", reqID, e.Err)
		}
	}
}
