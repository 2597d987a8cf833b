// Package handlers provides HTTP request handlers for the hello-ops microservice.
//
// Overview
//
// This package contains all HTTP request handlers for the greeting
// service. Handlers are organized by functionality:
//   - health.go: Health check endpoint
//   - hello.go: Parameterized greeting endpoint
//
// Request Flow
//
// Each handler follows a consistent pattern:
//   1. Record start time
//   2. Parse and validate request
//   3. Build the response payload
//   4. Log success/error and update metrics
//
// Error Handling
//
// The only application-level error is a missing required query
// parameter, returned as a structured validation error:
//   - 422: Unprocessable Entity (missing required field)
//
// Transport-level failures are handled by the framework and are not
// surfaced here.
//
// Metrics
//
// Requests are tracked with Prometheus metrics:
//   - requests_total: Total requests by endpoint and status
//   - request_duration_seconds: Request duration by endpoint
//
// Constants
//
// Log field keys are defined as constants for consistency:
//   - LogFieldEndpoint: API endpoint name
//   - LogFieldName: Caller-supplied name
//   - LogFieldReason: Reason for status
//   - LogFieldDurationMs: Request duration in milliseconds
package handlers
