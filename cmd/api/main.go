package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/meridianhq/hr-assistant/backend/internal/archive"
	"github.com/meridianhq/hr-assistant/backend/internal/config"
	"github.com/meridianhq/hr-assistant/backend/internal/handler"
	"github.com/meridianhq/hr-assistant/backend/internal/model/reference"
	"github.com/meridianhq/hr-assistant/backend/internal/service/ai"
	"github.com/meridianhq/hr-assistant/backend/internal/service/memory"
	"github.com/meridianhq/hr-assistant/backend/internal/service/orchestrator"
	"github.com/meridianhq/hr-assistant/backend/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if _, err := telemetry.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	_, meter, telemetryCleanup, err := telemetry.InitTelemetry(ctx, cfg.LogDir)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer telemetryCleanup()

	// Load the static employee reference dataset
	data, err := reference.Load(cfg.Data.Dir)
	if err != nil {
		log.Fatalf("failed to load reference data: %v", err)
	}
	log.Printf("loaded reference data for %d employees from %s", len(data.Employees()), cfg.Data.Dir)

	sessionMemory := memory.NewStore(cfg.Chat.SessionCap)

	// Initialize AI collaborators; the service degrades to keyword routing
	// and rule-rendered replies when no model is configured.
	var classifier orchestrator.Classifier
	var composer orchestrator.Composer
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - check the Ark model environment variables")
		} else {
			classifier = aiService
			composer = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, using keyword routing only")
	}

	opts := orchestrator.Options{
		HistoryLimit: cfg.Chat.HistoryLimit,
		Timeout:      time.Duration(cfg.Chat.TimeoutSeconds) * time.Second,
		Meter:        meter,
	}

	// Optional transcript archive for audit/debug sessions
	if cfg.Data.ArchivePath != "" {
		turnArchive, err := archive.Open(cfg.Data.ArchivePath)
		if err != nil {
			log.Printf("warning: failed to open transcript archive: %v", err)
		} else {
			defer turnArchive.Close()
			opts.Archive = turnArchive
			log.Printf("archiving transcripts to %s", cfg.Data.ArchivePath)
		}
	}

	orch := orchestrator.NewService(sessionMemory, data, classifier, composer, opts)
	router := handler.NewRouter(data, sessionMemory, orch, cfg.Chat.HistoryLimit)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("HR assistant backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
