package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"binaa-admin/internal/application/query"
	"binaa-admin/internal/application/services"
	"binaa-admin/internal/config"
	"binaa-admin/internal/infrastructure/activity"
	"binaa-admin/internal/infrastructure/bus"
	httpHandler "binaa-admin/internal/infrastructure/http"
	"binaa-admin/internal/infrastructure/kv"
	"binaa-admin/internal/infrastructure/memory"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "binaa-admin").Logger()

	logger.Info().Str("port", cfg.Port).Msg("starting admin API")

	// Infrastructure
	directory := memory.NewDirectory(cfg.SimulateLatency)
	eventBus := bus.NewInMemoryEventBus()

	store, err := kv.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("failed to open data directory")
	}

	feed := activity.NewFeed(cfg.ActivityFeedCap)
	feed.Register(eventBus)

	// Application services
	promoService := services.NewPromoCodeService(store, eventBus)
	banService := services.NewChatBanService(store, eventBus)
	settingsService := services.NewChatSettingsService(store, eventBus)
	complaintService := services.NewComplaintService(directory, eventBus)

	// Query handlers
	statsHandler := query.NewBIStatsHandler(directory)
	summaryHandler := query.NewDashboardSummaryHandler(directory)

	// HTTP controllers
	controllers := httpHandler.Controllers{
		User:      httpHandler.NewHTTPUserController(directory),
		Request:   httpHandler.NewHTTPRequestController(directory),
		Quotation: httpHandler.NewHTTPQuotationController(directory),
		Contract:  httpHandler.NewHTTPContractController(directory),
		Project:   httpHandler.NewHTTPProjectController(directory),
		Billing:   httpHandler.NewHTTPBillingController(directory),
		Support:   httpHandler.NewHTTPSupportController(directory, complaintService),
		Chat:      httpHandler.NewHTTPChatController(directory, banService, settingsService),
		Catalog:   httpHandler.NewHTTPCatalogController(directory),
		Promo:     httpHandler.NewHTTPPromoController(promoService),
		BI:        httpHandler.NewHTTPBIController(statsHandler, directory),
		Dashboard: httpHandler.NewHTTPDashboardController(summaryHandler, feed),
	}

	router := httpHandler.NewRouter(controllers, httpHandler.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimit,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}
