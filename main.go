// File: thecut/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"thecut/config"
	"thecut/cron"
	"thecut/database"
	barberRepo "thecut/database/repository/barber"
	reservationRepo "thecut/database/repository/reservation"
	"thecut/handlers"
	"thecut/routes"
	"thecut/services/notification"
	"thecut/services/wizard"
	"thecut/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx := context.Background()

	mongoClient, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(cfg.DatabaseName)

	sessionClient, err := utils.NewSessionClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}
	defer sessionClient.Close()

	messagingClient, err := utils.NewMessagingClient(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Firebase messaging: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	reservations := reservationRepo.NewMongoReservationRepo(db)
	barbers := barberRepo.NewMongoBarberRepo(db)

	// Notification outbox: the wizard enqueues, the worker drains.
	eventClient := cron.NewEventClient(cfg)
	defer eventClient.Close()

	notifier := &notification.DefaultReservationNotifier{
		Barbers:   barbers,
		Messaging: messagingClient,
		Logger:    logger,
	}
	workerSrv, workerMux := cron.NewNotificationWorker(cfg, notifier, logger)
	go func() {
		if err := workerSrv.Run(workerMux); err != nil {
			logger.Sugar().Fatalf("main: notification worker failed: %v", err)
		}
	}()

	// Services.
	wizardService := &wizard.DefaultWizardService{
		Sessions:     sessionClient,
		Reservations: reservations,
		Barbers:      barbers,
		Events:       eventClient,
		Logger:       logger,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	barberHandler := handlers.NewBarberHandler(barbers, logger)
	dashboardHandler := handlers.NewDashboardHandler(reservations, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailableServices: wizardHandler.GetServices,
		GetAvailableDates:    wizardHandler.GetDates,
		GetAvailableTimes:    wizardHandler.GetTimes,
		StartSession:         wizardHandler.StartSession,
		GetSession:           wizardHandler.GetSession,
		SelectService:        wizardHandler.SelectService,
		SelectDate:           wizardHandler.SelectDate,
		SelectTime:           wizardHandler.SelectTime,
		StepBack:             wizardHandler.Back,
		ConfirmBooking:       wizardHandler.Confirm,
		ResetSession:         wizardHandler.Reset,
		CancelSession:        wizardHandler.CancelSession,

		GetBarberHandler:    barberHandler.GetBarber,
		UpsertBarberHandler: barberHandler.UpsertBarber,

		GetDashboardHandler: dashboardHandler.GetDashboard,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	workerSrv.Shutdown()

	logger.Sugar().Info("main: server stopped gracefully")
}
