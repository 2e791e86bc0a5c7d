package middleware

import (
	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger logs one line per request once the handler chain has finished, e.g.
//
//	{"level":"info","method":"GET","path":"/api/crash","status":500,"latency":"21µs",...,"msg":"request completed"}
//
// Server errors are logged at warn, client errors at info and everything else at debug.
func Logger(logger *logrus.Logger, clk clock.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clk.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      path,
			"route":     c.FullPath(),
			"status":    status,
			"latency":   clk.Since(start).String(),
			"clientIP":  c.ClientIP(),
			"requestID": c.GetString(RequestIDKey),
		})

		switch {
		case status >= 500:
			entry.Warn("request completed")
		case status >= 400:
			entry.Info("request completed")
		default:
			entry.Debug("request completed")
		}
	}
}
