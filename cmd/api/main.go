package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mkoval-dev/bookmarket-backend/api/routes"
	"github.com/mkoval-dev/bookmarket-backend/internal/assistant"
	"github.com/mkoval-dev/bookmarket-backend/internal/cart"
	"github.com/mkoval-dev/bookmarket-backend/internal/catalog"
	"github.com/mkoval-dev/bookmarket-backend/internal/favorites"
	"github.com/mkoval-dev/bookmarket-backend/internal/session"
	"github.com/mkoval-dev/bookmarket-backend/internal/theme"
	"github.com/mkoval-dev/bookmarket-backend/pkg/config"
	"github.com/mkoval-dev/bookmarket-backend/pkg/gemini"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
	"github.com/mkoval-dev/bookmarket-backend/pkg/metrics"
	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

const serviceName = "bookmarket"

func main() {
	bootLog := logger.New(logger.Options{ServiceName: serviceName, Level: zerolog.InfoLevel})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		bootLog.Warn(ctx, "no .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog.Error(ctx, "load config", err)
		os.Exit(1)
	}

	logg := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var storage kvstore.Store
	if cfg.Storage.UseRedis() {
		redisStore, err := kvstore.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logg.Error(ctx, "connect redis", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		storage = redisStore
		logg.Info(ctx, "storage driver: redis")
	} else {
		storage = kvstore.NewMemory()
		logg.Info(ctx, "storage driver: memory")
	}

	storeMetrics := metrics.NewStoreMetrics()
	hub := observer.NewHub()
	hub.Subscribe(storeMetrics.ObserveMutation)
	hub.Subscribe(func(event observer.Event) {
		logg.Debug(logg.WithFields(ctx, map[string]any{
			"store": event.Store,
			"op":    event.Op,
		}), "store.mutation")
	})

	catalogStore := catalog.NewStore(catalog.Seed(), hub)
	cartLedger := cart.NewLedger(ctx, storage, hub, logg)
	favoriteSet := favorites.NewSet(hub)
	sessionSlot := session.NewSlot(hub)
	themePref := theme.NewPreference(ctx, storage, hub, logg)

	assistantSvc := assistant.NewService(gemini.NewClient(cfg.Assistant), logg)
	if !cfg.Assistant.Configured() {
		logg.Warn(ctx, "assistant api key missing, endpoints will answer with fallbacks")
	}

	router := routes.NewRouter(routes.Deps{
		Config:    cfg,
		Logger:    logg,
		Storage:   storage,
		Metrics:   storeMetrics,
		Catalog:   catalogStore,
		Cart:      cartLedger,
		Favorites: favoriteSet,
		Session:   sessionSlot,
		Theme:     themePref,
		Assistant: assistantSvc,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Info(logg.WithField(ctx, "port", cfg.App.Port), "server.start")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server.listen", err)
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logg.Info(ctx, "server.shutdown")

	drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logg.Error(ctx, "server.shutdown failed", err)
	}
}
