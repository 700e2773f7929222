// cmd/chatbot-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"support-chatbot/internal/common/config"
	"support-chatbot/internal/common/database"
	"support-chatbot/internal/common/logger"
	"support-chatbot/internal/common/observability"
	"support-chatbot/internal/engine"
	"support-chatbot/internal/nlp"
	"support-chatbot/internal/response"
	"support-chatbot/internal/store"
	"support-chatbot/internal/ticket"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting chatbot server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	data, err := config.LoadData(cfg.Data, log)
	if err != nil {
		zapLog.Fatal("data load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name, cfg.Server.JaegerEndpoint)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Conversation store (Redis when enabled, in-memory otherwise) ---
	var conversations store.ConversationStore = store.NewMemory(cfg.Engine.MaxContextLength)
	var redisClient *database.RedisClient
	if cfg.Database.Redis.Enabled {
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		conversations = store.NewRedis(redisClient.Client, cfg.Engine.MaxContextLength)
		zapLog.Info("Redis connected successfully")
	}

	// --- Durable history and tickets (PostgreSQL) ---
	var history *store.History
	var tickets *ticket.Repository
	if cfg.Database.Postgres.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		history = store.NewHistory(pg.DB)
		if err := history.InitSchema(ctx); err != nil {
			zapLog.Fatal("conversations schema failed", zap.Error(err))
		}

		tickets = ticket.NewRepository(pg.DB, log)
		if err := tickets.InitSchema(ctx); err != nil {
			zapLog.Fatal("tickets schema failed", zap.Error(err))
		}
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Conversation search (Elasticsearch) ---
	var index *store.TurnIndex
	if cfg.Database.Elasticsearch.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		index = store.NewTurnIndex(esClient.Client, cfg.Database.Elasticsearch.Index)
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Ticket notifications (SES/SNS) ---
	var notifier *ticket.Notifier
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		notifier, err = ticket.NewNotifier(ctx, cfg.Notifications, log)
		if err != nil {
			zapLog.Fatal("notifier init failed", zap.Error(err))
		}
		zapLog.Info("Ticket notifier initialized")
	}

	// --- Pipeline ---
	processor := nlp.NewProcessor(data.Intents, cfg.Engine.VocabularySize, cfg.Engine.EnableSentiment, log)
	manager := response.NewManager(
		data.KnowledgeBase, data.Templates, data.Suggestions,
		cfg.Engine.FAQThreshold, response.RandomSelector(time.Now().UnixNano()), log,
	)
	eng := engine.New(processor, manager, conversations, engine.Options{
		History:       history,
		Index:         index,
		Tickets:       tickets,
		Notifier:      notifier,
		Observability: obs,
		ContextLength: cfg.Engine.MaxContextLength,
	}, log)

	// --- Metrics/pprof server ---
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.MetricsPort)
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Metrics server listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("Metrics server failed", zap.Error(err))
		}
	}()

	// --- API server ---
	api := newServer(eng, tickets, index, history, cfg.App.Version, log)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		zapLog.Info("API server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Chatbot server stopped gracefully")
}
