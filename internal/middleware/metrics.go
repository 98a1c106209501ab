package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/service"
)

// unobservedPaths are polled by orchestrators and scrapers, not by station clients.
var unobservedPaths = map[string]struct{}{
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

// Metrics records count and latency of station API requests, labelled by route
// pattern so /skier/get/1 and /skier/get/2 share a series. Unmatched requests
// fall back to the raw path.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if _, skip := unobservedPaths[path]; skip {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
