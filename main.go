// File: tubtime/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tubtime/config"
	"tubtime/cron"
	"tubtime/database"
	appointmentRepoPkg "tubtime/database/repository/appointment"
	"tubtime/handlers"
	"tubtime/middleware"
	"tubtime/routes"
	apptService "tubtime/services/appointment"
	"tubtime/services/notification"
	"tubtime/services/scheduling"
	"tubtime/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	calendar, err := config.BusinessCalendar()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business calendar configuration: %v", err)
	}
	catalog := config.ServiceCatalog()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	mailer, err := notification.NewMailer()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
	}
	notificationService, err := notification.NewDefaultNotificationService(mailer)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := cron.NewAsynqReminderScheduler(calendar)
	cron.InitReminderWorker(apptRepo, notificationService)

	appointmentService := &apptService.DefaultAppointmentService{
		Repo:      apptRepo,
		Checker:   scheduling.NewChecker(catalog, calendar),
		Locker:    apptService.NewRedisSlotLocker(utils.GetLockClient()),
		Cache:     apptService.NewRedisCandidateCache(utils.GetCacheClient()),
		Storage:   storageService,
		Notifier:  notificationService,
		Reminders: reminderScheduler,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(appointmentService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CheckAvailabilityHandler: availabilityHandler.CheckAvailability,
		CreateAppointmentHandler: appointmentHandler.CreateAppointment,
		UploadPhotoHandler:       storageHandler.UploadPhoto,

		StaffLoginHandler:        handlers.StaffLoginHandler,
		GetAppointmentHandler:    appointmentHandler.GetAppointment,
		UpdateAppointmentHandler: appointmentHandler.UpdateAppointment,
		ListAppointmentsHandler:  appointmentHandler.ListAppointments,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

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
