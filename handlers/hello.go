package handlers

import (
	"net/http"
	"time"

	"hello-ops/logger"
	"hello-ops/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// LogFieldKeys for structured logging
	LogFieldEndpoint   = "endpoint"
	LogFieldName       = "name"
	LogFieldReason     = "reason"
	LogFieldDurationMs = "duration_ms"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	endpointHello = "hello"
)

// Hello - greeting endpoint handler
// GET /hello?name=Ada
//
// Response:
//   200: {"message": "hello Ada"}
//   422: validation error when name is absent
func Hello(c *gin.Context) {
	startTime := time.Now()

	// presence is what is validated, not non-emptiness: a caller
	// supplying name= gets greeted with the empty string
	name, ok := c.GetQuery("name")
	if !ok {
		handleMissingName(c, startTime)
		return
	}

	logger.Logger.Info("Greeting request",
		zap.String(LogFieldEndpoint, endpointHello),
		zap.String(LogFieldName, name),
	)

	c.JSON(http.StatusOK, HelloResponse{
		Message: "hello " + name,
	})

	metrics.RequestsTotal.WithLabelValues(endpointHello, StatusSuccess).Inc()
	metrics.RequestDuration.WithLabelValues(endpointHello).Observe(time.Since(startTime).Seconds())
}

// handleMissingName reports the missing required query parameter
func handleMissingName(c *gin.Context, startTime time.Time) {
	logger.Logger.Warn("Greeting request rejected",
		zap.String(LogFieldEndpoint, endpointHello),
		zap.String(LogFieldReason, "missing required query parameter: name"),
		zap.Int64(LogFieldDurationMs, time.Since(startTime).Milliseconds()),
	)

	c.JSON(http.StatusUnprocessableEntity, ValidationError{
		Detail: []ValidationDetail{
			{
				Type:  "missing",
				Loc:   []string{"query", "name"},
				Msg:   "Field required",
				Input: nil,
			},
		},
	})

	metrics.RequestsTotal.WithLabelValues(endpointHello, StatusError).Inc()
	metrics.RequestDuration.WithLabelValues(endpointHello).Observe(time.Since(startTime).Seconds())
}
