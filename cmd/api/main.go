package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"internship-alert/cmd/api/router"
	"internship-alert/cmd/api/services"
	"internship-alert/internal/logger"
	"internship-alert/collection"
	"internship-alert/config"
	"internship-alert/db"
	_ "internship-alert/docs" // swag will generate this package
	"internship-alert/eventbus"
	"internship-alert/extractor"
	"internship-alert/models"
	"internship-alert/notify"
	"internship-alert/repositories"
)

// @title           Internship Alert API
// @version         1.0
// @description     Extracts structured internship details from social platform postings and tracks them with deadline reminders
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Archive database is optional; an empty URI keeps everything in memory.
	var archive *repositories.InternshipRepository
	var aiLogs *repositories.AILogRepository
	if cfg.Mongo.URI != "" {
		if err := db.Init(ctx); err != nil {
			logger.Log.Errorf("failed to initialize MongoDB: %v", err)
			os.Exit(1)
		}
		archive = repositories.NewInternshipRepository(db.Database())
		aiLogs = repositories.NewAILogRepository(db.Database())
	}

	// Event bus is optional as well; empty brokers disables publishing.
	var bus eventbus.EventBus
	if cfg.Kafka.Brokers != "" {
		if err := eventbus.EnsureTopic(cfg.Kafka.Brokers, cfg.Kafka.Topic, 3); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topic: %v", err)
		}
		kafkaBus, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
		if err != nil {
			logger.Log.Errorf("failed to create event bus: %v", err)
			os.Exit(1)
		}
		defer kafkaBus.Close()
		bus = kafkaBus
	}

	col := collection.New()
	notifier := notify.NewMemoryNotifier(0)

	svc := services.NewInternshipService(services.InternshipServiceOptions{
		Extractor: extractor.NewGeminiExtractor(cfg),
		Col:       col,
		Notifier:  notifier,
		Archive:   archive,
		AILogs:    aiLogs,
		Bus:       bus,
		Topic:     cfg.Kafka.Topic,
		FeedLimit: cfg.Feeds.ImportLimit,
	})

	if err := svc.RestoreFromArchive(ctx); err != nil {
		logger.Log.Errorf("failed to restore archived internships: %v", err)
	}

	scanner := collection.NewScanner(col, notifier,
		time.Duration(cfg.Reminder.IntervalMinutes)*time.Minute,
		time.Duration(cfg.Reminder.WindowHours)*time.Hour,
	)
	scanner.OnRemind(func(ctx context.Context, rec models.Internship) {
		svc.PublishReminder(ctx, rec)
	})
	go scanner.Run(ctx)

	r := router.New(router.Deps{
		Internships: svc,
		Notifier:    notifier,
		AILogs:      aiLogs,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: cors.Default().Handler(r),
	}

	go func() {
		logger.Log.Infof("starting api service on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down api service...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown error: %v", err)
	}

	logger.Log.Info("api service stopped")
}
