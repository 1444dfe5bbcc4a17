package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domainRepo "wizzbot/internal/domain/repository"
	"wizzbot/internal/infrastructure/config"
	"wizzbot/internal/infrastructure/persistence"
	"wizzbot/internal/interface/provider"
	mongoRepo "wizzbot/internal/interface/repository"
	"wizzbot/internal/usecase"
	"wizzbot/pkg/airports"
	"wizzbot/pkg/cache"
	"wizzbot/pkg/logger"
	"wizzbot/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Wizzbot Price Monitor")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Price history is optional; without Postgres the checker simply
	// skips history writes.
	var historyRepo domainRepo.PriceHistoryRepository
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		if err := gormDB.AutoMigrate(&mongoRepo.PriceChecks{}); err != nil {
			log.Fatal("Failed to migrate price history schema", "error", err)
		}
		historyRepo = mongoRepo.NewGormPriceHistoryRepository(gormDB)
	} else {
		log.Info("POSTGRES_DSN not set, price history disabled")
	}

	// Set up metrics
	appMetrics := metrics.NewMetrics("wizzbot")

	// Set up repositories and collaborators
	subscriptionRepo := mongoRepo.NewMongoSubscriptionRepository(db)
	notifier := mongoRepo.NewTelegramRepository(cfg.TelegramAPIURL, cfg.TelegramToken, log)

	timetableCache := cache.NewRedisCache(cfg.RedisAddr)
	wizzClient := provider.NewWizzClient(cfg.WizzAPIURL, timetableCache, cfg.CacheTTLMinutes, appMetrics, log)

	resolver := airports.NewResolver()
	aggregator := usecase.NewPriceAggregator(wizzClient, resolver, log)
	checker := usecase.NewPriceChecker(subscriptionRepo, historyRepo, notifier, aggregator, appMetrics, log, cfg.MaxDaysToCheck)

	// Schedule the periodic sweep
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.CheckInterval, func() {
		if err := checker.CheckAll(ctx); err != nil {
			log.Error("Price sweep failed", "error", err)
		}
	})
	if err != nil {
		log.Fatal("Invalid CHECK_INTERVAL", "interval", cfg.CheckInterval, "error", err)
	}
	scheduler.Start()
	log.Info("Price checks scheduled", "interval", cfg.CheckInterval)

	// Set up HTTP server for metrics and manual triggering
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Flight Price Tracker работает!"))
	})
	mux.HandleFunc("/check-prices", func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := checker.CheckAll(ctx); err != nil {
				log.Error("Manual price sweep failed", "error", err)
			}
		}()
		w.Write([]byte("Проверка цен запущена"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
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

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Wizzbot Price Monitor stopped")
}
