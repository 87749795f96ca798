package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags each request with an id for log correlation. An inbound
// X-Request-ID is kept so upload retries can be traced end to end.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one line per request: id, method, path, status, response
// size, and latency. Upload bodies are never logged.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		requestID, _ := c.Get("request_id")
		log.Printf("[%s] %s %s status=%d bytes=%d latency=%s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start),
		)
	}
}

// Recovery turns panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
