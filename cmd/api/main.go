package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moshood-fashion/internal/auth"
	"moshood-fashion/internal/config"
	"moshood-fashion/internal/database"
	"moshood-fashion/internal/handler"
	"moshood-fashion/internal/mailer"
	"moshood-fashion/internal/repository"
	"moshood-fashion/internal/router"
	"moshood-fashion/internal/service"
	"moshood-fashion/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting moshood-fashion API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	guestCartRepo := repository.NewMemoryCartRepository()
	orderRepo := repository.NewOrderRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)
	requestRepo := repository.NewRequestRepository(pool, logger)
	subscriptionRepo := repository.NewSubscriptionRepository(pool, logger)
	contactRepo := repository.NewContactRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	statsRepo := repository.NewStatsRepository(pool, logger)

	// Initialize image storage with S3 and local fallback
	var images storage.ImageStore
	if cfg.Storage.S3Enabled {
		images, err = storage.NewS3Store(ctx, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Prefix, cfg.Storage.PublicURL, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 store, falling back to local file system")
			images, err = storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicURL, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize image storage: %w", err)
			}
		}
	} else {
		images, err = storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicURL, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize image storage: %w", err)
		}
		logger.Info().Msg("using local file system for image storage (S3 disabled)")
	}

	// Initialize mailer and token issuer
	mail := mailer.NewSMTPMailer(cfg.SMTP, logger)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartRepo, guestCartRepo, productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, paymentRepo, contactRepo, mail, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, logger)
	contactService := service.NewContactService(contactRepo, logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, mail, logger)
	notificationService := service.NewNotificationService(subscriptionRepo, productRepo, mail, logger)
	requestService := service.NewRequestService(requestRepo, logger)
	userService := service.NewUserService(userRepo, orderRepo, issuer, logger)
	statsService := service.NewStatsService(statsRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:      handler.NewProductHandler(productService, images, logger),
		Cart:         handler.NewCartHandler(cartService, logger),
		Checkout:     handler.NewCheckoutHandler(checkoutService, logger),
		Order:        handler.NewOrderHandler(orderService, logger),
		Contact:      handler.NewContactHandler(contactService, logger),
		Subscription: handler.NewSubscriptionHandler(subscriptionService, notificationService, logger),
		Request:      handler.NewRequestHandler(requestService, logger),
		User:         handler.NewUserHandler(userService, logger),
		Admin:        handler.NewAdminHandler(statsService, paymentService, logger),
	}

	// Initialize router
	mux := router.New(handlers, issuer, cfg.Auth.ServiceKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
