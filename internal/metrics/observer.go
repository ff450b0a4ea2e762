package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ObserveQuery starts timing a query layer operation. Call the returned
// function with the operation's error when it finishes.
func ObserveQuery(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		status := "success"
		if err != nil {
			status = "error"
		}
		DBQueryTotal.WithLabelValues(operation, status).Inc()
		DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// Middleware records request counts and latency labelled by the matched
// route pattern, so path ids never become label values.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Initialize pre-populates the label combinations of the query layer so the
// series exist from the first scrape.
func Initialize(operations ...string) {
	for _, op := range operations {
		DBQueryTotal.WithLabelValues(op, "success")
		DBQueryTotal.WithLabelValues(op, "error")
		DBQueryDuration.WithLabelValues(op)
	}
}
