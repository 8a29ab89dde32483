// logger.go - Request id and access logging middleware
//
// Every request gets an id (the client's X-Request-Id when supplied, otherwise
// a fresh UUID). Handlers read it back with RequestID to tag their own logs.

package middleware // Declares the package name

import ( // Import required packages
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework (for middleware)
	"github.com/google/uuid"     // Request id generation
	"github.com/sirupsen/logrus" // Structured logging
)

const (
	RequestIDHeader = "X-Request-Id" // Header carrying the request id
	requestIDKey    = "request_id"   // Gin context key
)

// RequestIDMiddleware - Ensures every request has an id, echoed in the response
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" || len(rid) > 128 { // Ignore missing or oversized client ids
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)                    // Store for handlers
		c.Writer.Header().Set(RequestIDHeader, rid) // Echo to the client
		c.Next()
	}
}

// RequestID returns the id stored by RequestIDMiddleware, or "" if absent
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger - Logs one structured line per request once it has been served
func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next() // Serve the request first

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": RequestID(c),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"bytes":      c.Writer.Size(),
			"ip":         c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}
