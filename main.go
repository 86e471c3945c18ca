// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	bookingRepoPkg "voyago/database/repository/booking"
	providerRepoPkg "voyago/database/repository/provider"
	transportRepoPkg "voyago/database/repository/transport"
	userRepoPkg "voyago/database/repository/user"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/booking"
	"voyago/services/provider"
	"voyago/services/transport"
	"voyago/services/user"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	transportRepo := transportRepoPkg.NewMongoTransportRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Transports: transportRepo,
		Bookings:   bookingRepo,
	}
	transportService := &transport.DefaultTransportService{
		Repo: transportRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo: providerRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Transport: handlers.NewTransportHandler(transportService),
		Provider:  handlers.NewProviderHandler(providerService),
		User:      handlers.NewUserHandler(userService),
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

	logger.Sugar().Info("main: server stopped gracefully")
}
