package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/elegance-studio/salon-service/internal/api/http"
	"github.com/elegance-studio/salon-service/internal/api/http/handlers"
	"github.com/elegance-studio/salon-service/internal/auth"
	"github.com/elegance-studio/salon-service/internal/config"
	"github.com/elegance-studio/salon-service/internal/events"
	"github.com/elegance-studio/salon-service/internal/observability"
	"github.com/elegance-studio/salon-service/internal/persistence"
	"github.com/elegance-studio/salon-service/internal/service"
	"github.com/elegance-studio/salon-service/internal/store"
	"github.com/elegance-studio/salon-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, err := persistence.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.Error(err))
	}
	defer storage.Close()

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	directory, err := store.NewStaffDirectory(ctx, storage, dispatcher, logger)
	if err != nil {
		logger.Fatal("failed to init staff directory", zap.Error(err))
	}
	ledger, err := store.NewAppointmentLedger(ctx, storage, dispatcher, logger)
	if err != nil {
		logger.Fatal("failed to init appointment ledger", zap.Error(err))
	}

	admin, err := auth.NewAdmin(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init admin auth", zap.Error(err))
	}
	adminMiddleware := auth.NewAdminMiddleware(admin)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, storage),
		Auth:            handlers.NewAuthHandler(admin),
		Staff:           handlers.NewStaffHandler(directory),
		Appointments:    handlers.NewAppointmentsHandler(ledger),
		AdminMiddleware: adminMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
