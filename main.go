package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"priisme/config"
	"priisme/cron"
	"priisme/database"
	bookingRepoPkg "priisme/database/repository/booking"
	cartRepoPkg "priisme/database/repository/cart"
	productRepoPkg "priisme/database/repository/product"
	salonRepoPkg "priisme/database/repository/salon"
	userRepoPkg "priisme/database/repository/user"
	"priisme/handlers"
	"priisme/middleware"
	"priisme/routes"
	"priisme/services/booking"
	"priisme/services/cart"
	"priisme/services/notification"
	"priisme/services/payment"
	"priisme/services/storage"
	"priisme/services/styling"
	"priisme/services/tasks"
	"priisme/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.ResolveIdentity())
	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	productRepo := productRepoPkg.NewCachedProductRepo(productRepoPkg.NewMongoProductRepo(), utils.GetCacheClient())
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// Notifications go to FCM when Firebase credentials are configured,
	// otherwise to the log.
	var notifier notification.NotificationService
	if fcm, err := notification.NewFCMNotificationService(userRepo, logger); err == nil {
		notifier = fcm
	} else {
		logger.Sugar().Warnf("main: FCM unavailable, falling back to log notifications: %v", err)
		notifier = notification.NewLogNotificationService(logger)
	}

	paymentGateway := payment.NewStripeGateway(logger)

	cartRegistry := cart.NewRegistry(cartRepo, notifier, paymentGateway, logger)

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	scheduler := tasks.NewScheduler(reminderClient)

	wizardStore := booking.NewRedisSessionStore(utils.GetWizardCacheClient())
	wizardService := booking.NewWizardService(
		salonRepo,
		bookingRepo,
		paymentGateway,
		notifier,
		wizardStore,
		scheduler,
		logger,
	)

	// Handlers.
	hb := &routes.HandlerBundle{
		Cart:           handlers.NewCartHandler(cartRegistry),
		Booking:        handlers.NewBookingHandler(wizardService),
		BookingRecords: handlers.NewBookingRecordsHandler(bookingRepo),
		Catalog:        handlers.NewCatalogHandler(productRepo, salonRepo),
		Device:         handlers.NewDeviceHandler(userRepo),
		Session:        handlers.NewSessionHandler(cartRegistry),
	}

	if cld, err := utils.Cloudinary(); err == nil {
		hb.Storage = handlers.NewStorageHandler(storage.NewCloudinaryStorage(cld))
	} else {
		logger.Sugar().Warnf("main: cloudinary unavailable, media endpoints disabled: %v", err)
	}

	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := styling.NewGeminiClient(context.Background(), key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize styling advisor: %v", err)
		}
		ctxStore := styling.NewRedisContextStore(utils.GetStylingCacheClient(), 30*time.Minute)
		hb.Styling = handlers.NewStylingHandler(styling.NewDefaultAdvisor(gemini, ctxStore))
	}

	routes.RegisterRoutes(router, hb)

	// Background reminder worker.
	cron.InitReminderWorker(notifier)

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
