package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/strongerfit/teamup-relay/pkg/logger"
)

// Logger logs every request with a fresh request id.
func Logger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		begin := time.Now()

		c.Next()

		l.Infof("[%s] %s %s -> %d (%v)",
			requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(begin))
	}
}
