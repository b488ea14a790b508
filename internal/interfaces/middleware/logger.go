package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with its id and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		prefix := "➡️ "
		if status >= 500 {
			prefix = "❌"
		} else if status >= 400 {
			prefix = "⚠️ "
		}
		log.Printf("%s %s %s %d %s rid=%s", prefix, c.Request.Method, c.Request.URL.Path, status,
			time.Since(start).Round(time.Microsecond), GetRequestID(c))
	}
}
