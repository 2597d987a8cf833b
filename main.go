// Package main provides the hello-ops microservice.
//
// This service exposes REST APIs for:
//   - Liveness health checks
//   - Parameterized greetings
//
// The service runs on port 8080 and supports:
//   - Health checks
//   - Prometheus metrics
//   - Structured logging
//
// Usage:
//
//	./hello-ops
//
// Environment:
//   PORT: Server port (default: 8080)
//   GIN_MODE: Gin mode (default: release)
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello-ops/handlers"
	"hello-ops/logger"
	"hello-ops/middleware"
	"hello-ops/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	// ShutdownTimeout is the maximum time to wait for graceful shutdown
	ShutdownTimeout = 30 * time.Second
)

// version is set at build time via -ldflags "-X main.version=<value>".
var version = "dev"

func main() {
	// Initialize logger
	logger.Init()
	defer logger.Sync()

	cfg := services.LoadConfig()
	gin.SetMode(cfg.GinMode)

	logger.Logger.Info("Starting hello-ops microservice",
		zap.String("port", cfg.Port),
		zap.String("version", version),
	)

	// Setup Gin router
	router := setupRouter()

	// Setup server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	GracefulShutdown(server)
}

// setupRouter configures and returns the Gin router with all routes and middleware
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.LoggingMiddleware())

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck)

	// Greeting endpoint
	router.GET("/hello", handlers.Hello)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// GracefulShutdown handles graceful server shutdown
func GracefulShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
