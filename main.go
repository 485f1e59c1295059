// File: careport/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"careport/apiclient"
	"careport/config"
	"careport/handlers"
	"careport/middleware"
	"careport/routes"
	"careport/services/appointments"
	"careport/services/booking"
	"careport/services/payments"
	"careport/session"
	"careport/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Backend API client.
	backendTimeout := time.Duration(config.AppConfig.BackendTimeoutSec) * time.Second
	api := apiclient.New(config.AppConfig.BackendAPIURL, backendTimeout, logger)

	// Stores.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	flowTTL := time.Duration(config.AppConfig.FlowTTLMinutes) * time.Minute
	sessionStore := session.NewRedisStore(utils.GetSessionCacheClient(), sessionTTL)
	flowStore := booking.NewRedisFlowStore(utils.GetFlowCacheClient(), flowTTL)

	// Services.
	flowService := &booking.DefaultFlowService{
		API:    api,
		Store:  flowStore,
		Logger: logger,
	}
	appointmentService := &appointments.DefaultService{
		API:    api,
		Logger: logger,
	}
	paymentService := &payments.DefaultService{
		API:    api,
		Logger: logger,
	}

	hb := handlers.NewHandlerBundle(api, sessionStore, flowService, appointmentService, paymentService, sessionTTL)
	routes.RegisterRoutes(router, hb, sessionStore)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("careport gateway listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down careport gateway")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
}
