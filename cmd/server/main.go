package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-audit-service/internal/domain/repository"
	"flight-audit-service/internal/infrastructure/config"
	"flight-audit-service/internal/infrastructure/persistence"
	"flight-audit-service/internal/infrastructure/router"
	"flight-audit-service/internal/interface/handler"
	flightRepo "flight-audit-service/internal/interface/repository"
	"flight-audit-service/internal/usecase"
	"flight-audit-service/pkg/logger"
	"flight-audit-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flight Audit Service", "version", cfg.AppVersion, "source", cfg.FlightSource)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the flight record source
	var flightRecordRepo repository.FlightRecordRepository
	var shutdownSource func(context.Context)

	switch cfg.FlightSource {
	case config.SourceMongo:
		log.Info("Connecting to MongoDB")
		mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
		flightRecordRepo = flightRepo.NewMongoFlightRecordRepository(db, cfg.MongoCollection)
		shutdownSource = func(ctx context.Context) {
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}

	case config.SourcePostgres:
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		if err := flightRepo.MigrateFlightRecords(ctx, gormDB); err != nil {
			log.Fatal("Failed to migrate flight_records table", "error", err)
		}
		flightRecordRepo = flightRepo.NewGormFlightRecordRepository(gormDB)
		shutdownSource = func(context.Context) {
			if sqlDB, err := gormDB.DB(); err == nil {
				sqlDB.Close()
			}
		}

	default:
		log.Info("Reading flights from CSV", "path", cfg.FlightsCSVPath)
		flightRecordRepo = flightRepo.NewCSVFlightRecordRepository(cfg.FlightsCSVPath, log)
		shutdownSource = func(context.Context) {}
	}

	// Set up metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, registry)

	// Set up use case and handlers
	auditor, err := usecase.NewFlightAuditor(flightRecordRepo, cfg.MinTurnaround, appMetrics, log)
	if err != nil {
		log.Fatal("Failed to create flight auditor", "error", err)
	}
	flightHandler := handler.NewFlightHandler(auditor, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewHTTPRouter(registry, log, flightHandler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port, "minTurnaround", auditor.MinTurnaround().String())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	shutdownSource(shutdownCtx)

	log.Info("Flight Audit Service stopped")
}
