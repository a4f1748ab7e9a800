package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

// RequestLogger logs one line per request with status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			glog.Errorf("%s %s %d %s", c.Request.Method, path, status, latency)
		case status >= 400:
			glog.Warningf("%s %s %d %s", c.Request.Method, path, status, latency)
		default:
			glog.Infof("%s %s %d %s", c.Request.Method, path, status, latency)
		}
	}
}
