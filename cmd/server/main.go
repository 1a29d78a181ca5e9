package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"intakeflow/internal/ai"
	"intakeflow/internal/checklist"
	"intakeflow/internal/config"
	"intakeflow/internal/logger"
	"intakeflow/internal/service"
	"intakeflow/internal/session"
	"intakeflow/internal/transport/rest"
	"intakeflow/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logger.Log.Fatal("Failed to init logger: ", err)
	}

	log := logger.Log
	log.Info("started")
	log.Infof("AI config:")
	log.Infof("  Classify: %s", cfg.AI.Models.Classify)
	log.Infof("  Question: %s", cfg.AI.Models.Question)
	log.Infof("  Report:   %s", cfg.AI.Models.Report)
	log.Infof("  Explain:  %s", cfg.AI.Models.Explain)
	if cfg.AI.IsEnabled() {
		log.Info("  API key:  configured")
	} else {
		log.Info("  API key:  NOT SET (using mock analysis)")
	}

	ctx := context.Background()

	// Session store: Redis when configured, in-memory otherwise
	var store session.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis: ", err)
		}
		log.Info("Connected to Redis")
		store = session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	} else {
		log.Info("Using in-memory session store")
		store = session.NewMemoryStore()
	}

	// Initialize WebSocket hub
	wsHub := ws.NewHub()

	// Initialize AI collaborators and services
	catalog := checklist.DefaultCatalog()
	aiClient := ai.NewClient(cfg.AI)
	analyzer := service.NewGapAnalyzer(ai.NewClassifier(aiClient), catalog)
	sequencer := service.NewQuestionSequencer(ai.NewGenerator(aiClient), catalog, cfg.MaxQuestions)
	conversationSvc := service.NewConversationService(store, analyzer, sequencer)
	reportSvc := service.NewReportService(store, ai.NewReportWriter(aiClient))

	// Inject broadcaster (wsHub implements service.Broadcaster)
	conversationSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		ConversationService: conversationSvc,
		ReportService:       reportSvc,
		WSHub:               wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Infof("Server starting on :%s", cfg.HTTPPort)
		log.Info("Endpoints:")
		log.Info("  POST   /v1/sessions")
		log.Info("  GET    /v1/sessions/{id}/question")
		log.Info("  POST   /v1/sessions/{id}/answers")
		log.Info("  GET    /v1/sessions/{id}/status")
		log.Info("  GET    /v1/sessions/{id}/report")
		log.Info("  DELETE /v1/sessions/{id}")
		log.Info("  WS     /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe: ", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
