package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mesafy/config"
	"mesafy/cron"
	"mesafy/database"
	reservationRepoPkg "mesafy/database/repository/reservation"
	restaurantRepoPkg "mesafy/database/repository/restaurant"
	serviceRepoPkg "mesafy/database/repository/service"
	"mesafy/handlers"
	"mesafy/middleware"
	"mesafy/routes"
	"mesafy/services/availability"
	"mesafy/services/booking"
	"mesafy/services/notification"
	"mesafy/utils"

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
	routes.RegisterCORS(router)

	// repositories.
	restaurantRepo := restaurantRepoPkg.NewMongoRestaurantRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	if mongoRepo, ok := reservationRepo.(interface{ EnsureIndexes() error }); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
		}
	}

	// services.
	engine := &availability.Engine{
		Restaurants:  restaurantRepo,
		Services:     serviceRepo,
		Reservations: reservationRepo,
	}

	notificationService := &notification.LogNotificationService{}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	bookingService := &booking.DefaultBookingService{
		Engine:       engine,
		Reservations: reservationRepo,
		Restaurants:  restaurantRepo,
		Services:     serviceRepo,
		Notifier:     notificationService,
		TaskClient:   taskClient,
		SessionCache: utils.GetSessionCacheClient(),
	}

	cron.InitReservationWorker(notificationService, bookingService, reservationRepo)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(engine, bookingService, restaurantRepo, serviceRepo, reservationRepo)
	routes.RegisterAvailabilityRoutes(router, handlerBundle)
	routes.RegisterServiceRoutes(router, handlerBundle)
	routes.RegisterReservationRoutes(router, handlerBundle)
	routes.RegisterRestaurantRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

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
