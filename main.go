// File: washly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washly/config"
	"washly/database"
	"washly/handlers"
	"washly/middleware"
	"washly/routes"
	"washly/services/admin"
	"washly/services/catalog"
	"washly/services/notification"
	"washly/services/washes"
	"washly/services/wizard"
	"washly/utils"
	"washly/workers"

	bookingRepo "washly/database/repository/booking"
	washerRepo "washly/database/repository/washer"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	washers := washerRepo.NewMongoWasherRepo()

	// notification queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	notifier, err := notification.NewDefaultNotificationService(queueClient, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	workers.InitNotificationWorker(logger)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Bookings: bookings,
	}

	wizardService := &wizard.DefaultWizardService{
		Store:    wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), wizard.SessionTTL),
		Catalog:  catalogService,
		Bookings: bookings,
		Notifier: notifier,
	}

	adminService := &admin.DefaultAdminService{
		Bookings: bookings,
		Washers:  washers,
		Notifier: notifier,
	}

	washesService := &washes.DefaultWashesService{
		Bookings: bookings,
		Washers:  washers,
		Admin:    adminService,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Wizard:  handlers.NewWizardHandler(wizardService),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Washes:  handlers.NewWashesHandler(washesService),
		Admin:   handlers.NewAdminHandler(adminService, notifier),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
