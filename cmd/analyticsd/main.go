package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cdfmis/analytics-service/internal/application/usecase"
	"github.com/cdfmis/analytics-service/internal/domain/service"
	"github.com/cdfmis/analytics-service/internal/infrastructure/config"
	"github.com/cdfmis/analytics-service/internal/infrastructure/messaging"
	"github.com/cdfmis/analytics-service/internal/infrastructure/postgres"
	grpcpresentation "github.com/cdfmis/analytics-service/internal/presentation/grpc"
	"github.com/cdfmis/analytics-service/internal/presentation/rest"
	"github.com/cdfmis/analytics-service/pkg/kafka"
	"github.com/cdfmis/analytics-service/pkg/observability"
	pgxutil "github.com/cdfmis/analytics-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Service: "analytics-service",
		Level:   cfg.LogLevel,
		Format:  "json",
	})

	logger.Info("starting analytics-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "analytics-service",
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "analytics-service",
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Run database migrations.
	if err := pgxutil.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgxutil.NewPool(dbCtx, pgxutil.Config{URL: cfg.DatabaseURL})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Wire infrastructure adapters.
	assessmentRepo := postgres.NewAssessmentRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)

	producer := kafka.NewProducer(kafka.Config{Brokers: []string{cfg.KafkaBroker}})
	defer producer.Close()
	eventPublisher := messaging.NewKafkaPublisher(producer, cfg.EventsTopic, logger)

	// Wire domain engines.
	riskEngine := service.NewRiskScoringEngine()
	advisoryEngine := service.NewAdvisoryEngine()

	// Wire use cases.
	assessPaymentRiskUC := usecase.NewAssessPaymentRisk(snapshotRepo, assessmentRepo, eventPublisher, riskEngine)
	calculatePaymentRiskUC := usecase.NewCalculatePaymentRisk(assessmentRepo, eventPublisher, riskEngine)
	calculateProjectRiskUC := usecase.NewCalculateProjectRisk(assessmentRepo, eventPublisher, riskEngine)
	getAssessmentUC := usecase.NewGetAssessment(assessmentRepo)
	generateInsightsUC := usecase.NewGenerateDashboardInsights(snapshotRepo, advisoryEngine)

	// Payment event consumer reassesses risk after disbursements.
	paymentConsumer := messaging.NewPaymentEventConsumer(
		kafka.Config{
			Brokers:       []string{cfg.KafkaBroker},
			ConsumerGroup: cfg.ConsumerGroup,
		},
		cfg.PaymentsTopic,
		assessPaymentRiskUC,
		logger,
	)
	defer paymentConsumer.Close()

	// gRPC server.
	grpcHandler := grpcpresentation.NewAnalyticsHandler(
		assessPaymentRiskUC,
		calculatePaymentRiskUC,
		calculateProjectRiskUC,
		getAssessmentUC,
		generateInsightsUC,
		logger,
	)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(logger, pool)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)
	if metricsHandler != nil {
		httpMux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 3)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	go func() {
		if err := paymentConsumer.Start(ctx); err != nil {
			errCh <- fmt.Errorf("payment consumer error: %w", err)
		}
	}()

	logger.Info("analytics-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down analytics-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("analytics-service stopped")
}
