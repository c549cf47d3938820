// Plandeck server — accepts construction drawing uploads, runs the sheet
// processing pipeline through the analysis container, and serves plan
// state over HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/plandeck/plandeck/pkg/api"
	"github.com/plandeck/plandeck/pkg/cleanup"
	"github.com/plandeck/plandeck/pkg/config"
	"github.com/plandeck/plandeck/pkg/container"
	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/database"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/orchestrator"
	"github.com/plandeck/plandeck/pkg/queue"
	"github.com/plandeck/plandeck/pkg/services"
	"github.com/plandeck/plandeck/pkg/stages"
	"github.com/plandeck/plandeck/pkg/storage"
	"github.com/plandeck/plandeck/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Plandeck",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID)

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup recovery of jobs this pod abandoned
	if err := queue.RecoverStartupJobs(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup jobs", "error", err)
		// Non-fatal — continue
	}

	// 4. Domain services
	planService := services.NewPlanService(dbClient.Client)
	sheetService := services.NewSheetService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Blob store, analysis container client, queue enqueuer
	blobs, err := storage.NewFSStore(cfg.Storage.RootDir)
	if err != nil {
		slog.Error("Failed to open blob store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}
	containerClient := container.NewClient(cfg.Container)
	enqueuer := queue.NewEnqueuer(dbClient.Client)

	// 7. Coordinator and deadline sweeper
	coord := coordinator.New(coordinator.NewEntStore(dbClient.Client), enqueuer, publisher, cfg.Pipeline.PlanTimeout)
	defer coord.StopAlarms()

	sweeper := coordinator.NewDeadlineSweeper(coord, cfg.Pipeline.DeadlineSweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 8. Stage executors and worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue,
		stages.NewImageGenExecutor(blobs, containerClient, coord, publisher, sheetService, cfg.Pipeline.RenderBatchSize),
		stages.NewMetadataExecutor(blobs, containerClient, coord, publisher, sheetService),
		stages.NewCalloutExecutor(blobs, containerClient, coord, publisher),
		stages.NewLayoutExecutor(blobs, containerClient, coord, publisher),
		stages.NewTilesExecutor(blobs, containerClient, coord, publisher, sheetService),
	)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 10. HTTP server
	orch := orchestrator.New(enqueuer, publisher)
	httpServer := api.NewServer(dbClient, blobs, coord, orch, planService, sheetService, workerPool, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Plandeck started successfully",
		"pod_id", podID,
		"workers_per_stage", cfg.Queue.WorkersPerStage)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain in-flight stage jobs first, then HTTP.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be recovered on next startup")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
