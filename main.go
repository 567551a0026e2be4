// File: meetdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"meetdesk/config"
	"meetdesk/cron"
	"meetdesk/database"
	bookingRepoPkg "meetdesk/database/repository/booking"
	settingsRepoPkg "meetdesk/database/repository/settings"
	"meetdesk/handlers"
	"meetdesk/routes"
	"meetdesk/services/bookingadmin"
	"meetdesk/services/notification"
	"meetdesk/services/scheduling"
	"meetdesk/services/tasks"
	"meetdesk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	if err := bookingRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()

	// services.
	notifSvc := notification.NewEmailNotificationService(logger)
	reminderClient := tasks.NewReminderClient()

	schedulingSvc := &scheduling.DefaultSchedulingService{
		BookingRepo:  bookingRepo,
		SettingsRepo: settingsRepo,
		Cache:        utils.GetCacheClient(),
		SessionCache: utils.GetSessionCacheClient(),
		Reminders:    reminderClient,
		Notifier:     notifSvc,
		Logger:       logger,
	}

	adminSvc := &bookingadmin.DefaultBookingAdminService{
		Repo:         bookingRepo,
		SettingsRepo: settingsRepo,
		Cache:        utils.GetCacheClient(),
		Logger:       logger,
	}

	cron.InitReminderWorker(notifSvc, bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(schedulingSvc, logger),
		Admin:      handlers.NewAdminHandler(adminSvc, logger),
		Auth:       handlers.NewAuthHandler(logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := reminderClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
