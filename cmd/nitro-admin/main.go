package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rmacedo/nitro-admin-go/internal/config"
	"github.com/rmacedo/nitro-admin-go/internal/handler"
	"github.com/rmacedo/nitro-admin-go/internal/infra/cache"
	"github.com/rmacedo/nitro-admin-go/internal/infra/nitro"
	"github.com/rmacedo/nitro-admin-go/internal/infra/observability"
	"github.com/rmacedo/nitro-admin-go/internal/infra/store"
	"github.com/rmacedo/nitro-admin-go/internal/port"
	"github.com/rmacedo/nitro-admin-go/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = godotenv.Load()

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.String("settings_db", cfg.SettingsDBPath),
		zap.Strings("cors_origins", cfg.CORSAllowedOrigins),
		zap.Duration("installments_cache_ttl", cfg.InstallmentsCacheTTL),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "nitro-admin")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Settings store ---
	settingsStore, err := store.Open(cfg.SettingsDBPath, logger)
	if err != nil {
		logger.Fatal("failed to open settings store", zap.Error(err))
	}
	defer settingsStore.Close()

	// --- Provider clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	cb := nitro.NewBreaker("nitro-api")

	// One client per request, bound to whatever credentials are stored at
	// that moment. The breaker is shared across all of them.
	clientFactory := port.ClientFactory(func(endpoint, apiToken string) port.PaymentsAPI {
		return nitro.NewClient(httpClient, endpoint, apiToken, cb, logger)
	})
	prober := nitro.NewProber(httpClient, logger)

	// --- Caches ---
	installmentsCache := cache.New[json.RawMessage](cfg.InstallmentsCacheTTL)
	defer installmentsCache.Close()

	// --- Services ---
	svcs := handler.Services{
		Dashboard:    service.NewDashboardService(settingsStore, clientFactory, metrics, logger),
		Catalog:      service.NewCatalogService(settingsStore, clientFactory, installmentsCache, metrics, logger),
		Transactions: service.NewTransactionsService(settingsStore, clientFactory, metrics, logger),
		Settings:     service.NewSettingsService(settingsStore, prober, logger),
		Bot:          service.NewBotService(settingsStore, logger),
		MercadoPago:  service.NewMercadoPagoService(settingsStore, logger),
	}

	// --- Router ---
	router := handler.NewRouter(svcs, metrics, cfg.CORSAllowedOrigins, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
