package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"strikersyard/config"
	"strikersyard/cron"
	"strikersyard/database"
	bookingRepoPkg "strikersyard/database/repository/booking"
	catalogRepoPkg "strikersyard/database/repository/catalog"
	userRepoPkg "strikersyard/database/repository/user"
	"strikersyard/handlers"
	"strikersyard/middleware"
	"strikersyard/routes"
	"strikersyard/services/booking"
	"strikersyard/services/notification"
	"strikersyard/services/payment"
	"strikersyard/services/tasks"
	"strikersyard/services/user"
	"strikersyard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitOTPCache()

	// Repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	scopeGlobal := config.AppConfig.ConflictScope != config.ConflictScopeService
	if err := catalogRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(scopeGlobal); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
	}

	// The slot catalog is fixed for the process lifetime; loaded once here.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	catalog, err := booking.LoadCatalog(ctx, catalogRepo)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load slot catalog: %v", err)
	}

	partialFraction, err := decimal.NewFromString(config.AppConfig.PartialPaymentPercentage)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid PARTIAL_PAYMENT_PERCENTAGE: %v", err)
	}
	eveningStart, err := utils.ClockToMinutes(config.AppConfig.EveningStart)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid EVENING_START: %v", err)
	}

	// Task queue client for deferred expiry and confirmation emails.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer asynqClient.Close()
	scheduler := tasks.NewAsynqScheduler(asynqClient)

	gateway := payment.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret)
	mailer := notification.NewSMTPMailer()

	// Services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: mailer,
	}

	availabilityService := &booking.DefaultAvailabilityService{
		Repo:    bookingRepo,
		Catalog: catalog,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:                bookingRepo,
		CatalogRepo:         catalogRepo,
		UserRepo:            userRepo,
		Catalog:             catalog,
		Gateway:             gateway,
		Tasks:               scheduler,
		Logger:              logger,
		PartialFraction:     partialFraction,
		EveningStart:        eveningStart,
		ExpiryWindow:        time.Duration(config.AppConfig.BookingExpiryMinutes) * time.Minute,
		GlobalConflictScope: scopeGlobal,
	}

	// Background workers: deferred tasks plus the periodic expiry backstop.
	cron.InitTaskWorker(bookingService, mailer)
	sweep := cron.StartExpirySweep(bookingService, bookingRepo)
	defer sweep.Stop()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.Handlers{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService, availabilityService, logger),
		Services: handlers.NewServicesHandler(catalogRepo),
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
