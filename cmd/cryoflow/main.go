// CryoFlow orchestrator daemon — watches microscope output directories,
// drives the preprocessing pipeline on the cluster, and serves the control
// API with live websocket updates.
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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cryoflow/cryoflow/pkg/api"
	"github.com/cryoflow/cryoflow/pkg/cleanup"
	"github.com/cryoflow/cryoflow/pkg/cluster"
	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/database"
	"github.com/cryoflow/cryoflow/pkg/events"
	"github.com/cryoflow/cryoflow/pkg/orchestrator"
	"github.com/cryoflow/cryoflow/pkg/services"
	"github.com/cryoflow/cryoflow/pkg/version"
	"github.com/cryoflow/cryoflow/pkg/watch"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting CryoFlow", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
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

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client)
	activityService := services.NewActivityService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Watcher and cluster driver
	watcher := watch.NewService(cfg.Watcher)
	driver := cluster.NewSlurmDriver(cfg.Slurm)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go driver.Run(runCtx)

	// 6. Orchestrator
	orch := orchestrator.New(
		cfg.Orchestrator, cfg.Slurm,
		sessionService, jobService, activityService, projectService,
		watcher, driver, eventPublisher,
	)
	go orch.Run(runCtx)

	// Sessions left running by a previous process restart from scratch; their
	// orphaned cluster jobs are cancelled first.
	if err := orch.ResumeRunningAfterRestart(ctx); err != nil {
		slog.Error("Restart recovery failed", "error", err)
	}

	// 7. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	server := api.NewServer(
		sessionService, jobService, activityService, projectService,
		orch, connManager, dbClient.DB(),
	)
	router := gin.New()
	router.Use(gin.Recovery())
	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("CryoFlow started")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting HTTP first, then stop watching
	// and let the event loops drain. In-flight cluster jobs keep running and
	// are recovered on the next start.
	httpCtx, httpCancel := context.WithTimeout(ctx, cfg.Orchestrator.GracefulShutdownTimeout)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	orch.Shutdown()
	cancelRun()

	slog.Info("Shutdown complete")
}
