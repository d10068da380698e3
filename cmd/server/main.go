package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/config"
	frontdeskEvents "github.com/hotel-frontdesk/service-frontdesk/internal/events"
	"github.com/hotel-frontdesk/service-frontdesk/internal/handler"
	"github.com/hotel-frontdesk/service-frontdesk/internal/health"
	"github.com/hotel-frontdesk/service-frontdesk/internal/kafka"
	"github.com/hotel-frontdesk/service-frontdesk/internal/logger"
	"github.com/hotel-frontdesk/service-frontdesk/internal/metrics"
	"github.com/hotel-frontdesk/service-frontdesk/internal/middleware"
	"github.com/hotel-frontdesk/service-frontdesk/internal/persistence"
	"github.com/hotel-frontdesk/service-frontdesk/internal/store"
)

const serviceName = "service-frontdesk"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-frontdesk",
		zap.String("port", cfg.Port),
		zap.String("store_driver", cfg.StoreConfig.Driver),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the durable store
	kv, err := persistence.Open(ctx, cfg.StoreConfig)
	if err != nil {
		log.Fatal("failed to open durable store", zap.Error(err))
	}
	defer func() { _ = kv.Close() }()
	snapshotRepo := persistence.NewAdapter(kv, log)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Initialize Kafka producer when brokers are configured
	var publisher application.EventPublisher
	var kafkaProducer *kafka.Producer
	if cfg.KafkaConfig.Enabled() {
		kafkaProducer = kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		publisher = kafkaProducer
	} else {
		log.Info("no Kafka brokers configured, events disabled")
	}

	// Initialize application service and restore state
	bookingService := application.NewBookingService(
		store.NewSeeded(),
		snapshotRepo,
		publisher,
		m,
		log,
		cfg.Autosave,
	)
	if _, err := bookingService.Restore(ctx); err != nil {
		log.Fatal("failed to restore state", zap.Error(err))
	}

	// Start the cancellation command consumer in a goroutine
	var commandConsumer *frontdeskEvents.CancellationCommandConsumer
	if cfg.KafkaConfig.Enabled() {
		groupID := cfg.KafkaConfig.GroupPrefix + "frontdesk-service"
		commandConsumer = frontdeskEvents.NewCancellationCommandConsumer(
			cfg.KafkaConfig.Brokers,
			groupID,
			bookingService,
			log,
		)
		defer func() { _ = commandConsumer.Close() }()

		go func() {
			log.Info("starting cancellation command consumer")
			if err := commandConsumer.Start(ctx); err != nil && err != context.Canceled {
				log.Error("cancellation command consumer error", zap.Error(err))
			}
		}()
	}

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check and metrics routes
	healthHandler := health.NewHandler(snapshotRepo, serviceName)
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register routes
	handler.NewBookingHandler(bookingService).RegisterRoutes(&router.RouterGroup)
	handler.NewAdminHandler(bookingService).RegisterRoutes(&router.RouterGroup)
	handler.NewLegacyHandler(bookingService).RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-frontdesk...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	// Save the session state
	if err := bookingService.Persist(shutdownCtx); err != nil {
		log.Error("failed to save state on shutdown", zap.Error(err))
	} else {
		log.Info("state saved")
	}

	log.Info("service-frontdesk stopped")
}
