package middleware

import (
	"net/http"
	"time"

	"go-bonus/internal/shared/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests labelled by
// route template. A panicking handler is counted as 500 and the panic is
// passed on to the recovery middleware.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.RequestStarted()

		defer func() {
			if rec := recover(); rec != nil {
				metrics.RequestFinished(c.Request.Method, c.FullPath(), http.StatusInternalServerError, time.Since(start))
				panic(rec)
			}
			metrics.RequestFinished(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
		}()

		c.Next()
	}
}
