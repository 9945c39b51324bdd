package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/madcollective/donations-api/config"
	"github.com/madcollective/donations-api/internal/handlers"
	"github.com/madcollective/donations-api/internal/middleware"
	"github.com/madcollective/donations-api/internal/models"
	"github.com/madcollective/donations-api/internal/payments"
	"github.com/madcollective/donations-api/internal/services"
	"github.com/madcollective/donations-api/pkg/httpclient"
	"github.com/madcollective/donations-api/pkg/logger"
	"github.com/madcollective/donations-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Donations API",
		zap.String("environment", cfg.Server.AppEnv),
		zap.Bool("stripe_test_mode", cfg.Stripe.TestMode),
	)

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Resolve the form schema once; the validator and the form-config
	// endpoint both work from it
	schema := models.NewFormSchema(
		cfg.Form.FieldsDisplayed,
		cfg.Form.FieldsRequired,
		cfg.Form.AddressFields,
	)

	// Initialize HTTP client for external API calls
	httpClient := httpclient.NewStandardClient()

	// Initialize payment gateway and services
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey())
	donationService := services.NewDonationService(gateway, cfg, schema, httpClient)

	// Initialize handlers
	donationHandler := handlers.NewDonationHandler(donationService, schema)
	formHandler := handlers.NewFormHandler(cfg, schema)
	healthHandler := handlers.NewHealthHandler()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration - only the configured origins may embed the form
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: donations get a tight budget, everything else a loose one
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	donateRateLimiter := middleware.NewRateLimiter(5, 10)     // 5 req/sec, burst of 10 (prevent card testing)

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.GET("/donation-form", generalRateLimiter.Middleware(), formHandler.FormConfig)
	v1.POST("/donate", donateRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), donationHandler.Donate)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
