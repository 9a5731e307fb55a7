// File: stylebook/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylebook/config"
	"stylebook/cron"
	"stylebook/database"
	appointmentRepo "stylebook/database/repository/appointment"
	scheduleRepo "stylebook/database/repository/schedule"
	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/handlers"
	"stylebook/middleware"
	"stylebook/routes"
	"stylebook/services/availability"
	"stylebook/services/booking"
	"stylebook/services/events"
	"stylebook/services/stylist"
	"stylebook/services/tasks"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	cacheClient := utils.GetCacheClient()

	// repositories.
	stylists := stylistRepo.NewMongoStylistRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"stylists":     stylists.EnsureIndexes,
		"schedules":    schedules.EnsureIndexes,
		"appointments": appointments.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	// task queue and events.
	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	asynqClient := asynq.NewClient(queueOpts)
	defer asynqClient.Close()

	publisher := events.NewPublisher(config.AppConfig.KafkaBrokers, logger)
	defer publisher.Close()

	// services.
	stylistService, err := stylist.NewDefaultStylistService(stylists, schedules, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize stylist service", zap.Error(err))
	}
	bookingService := &booking.DefaultBookingService{
		Stylists:     stylists,
		Schedules:    schedules,
		Appointments: appointments,
		Sessions:     &booking.RedisSessionStore{Client: cacheClient},
		Tasks:        &tasks.AsynqScheduler{Client: asynqClient, Location: time.Local},
		Events:       publisher,
		Options:      availability.Options{MinutePrecision: config.AppConfig.AvailabilityMinutePrecision},
		SessionTTL:   time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Logger:       logger,
	}

	worker := cron.NewAppointmentWorker(queueOpts, bookingService, logger)
	worker.Start()

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, 60*time.Second, []*redis.Client{cacheClient}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Stylist:     handlers.NewStylistHandler(stylistService, bookingService),
		Appointment: handlers.NewAppointmentHandler(bookingService),
		Booking:     handlers.NewBookingHandler(bookingService),
	}
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
