package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grandplaza/hotel-reservation/internal/application"
	"github.com/grandplaza/hotel-reservation/internal/config"
	"github.com/grandplaza/hotel-reservation/internal/domain"
	"github.com/grandplaza/hotel-reservation/internal/handler"
	"github.com/grandplaza/hotel-reservation/internal/identity"
	"github.com/grandplaza/hotel-reservation/internal/logger"
	"github.com/grandplaza/hotel-reservation/internal/middleware"
	"github.com/grandplaza/hotel-reservation/internal/repository"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "hotel-reservation")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting hotel-reservation",
		zap.String("port", cfg.Port),
		zap.String("hotel", cfg.Hotel.Name),
	)

	// Build the hotel aggregate and seed the default inventory
	hotel, err := domain.NewHotel(cfg.Hotel.ID, cfg.Hotel.Name, cfg.Hotel.Location)
	if err != nil {
		log.Fatal("failed to create hotel", zap.Error(err))
	}
	if err := seedRooms(hotel); err != nil {
		log.Fatal("failed to seed rooms", zap.Error(err))
	}
	log.Info("room inventory seeded", zap.Int("rooms", hotel.RoomCount()))

	// Initialize front-end bookkeeping stores
	customerStore := repository.NewCustomerStore()
	bookingStore := repository.NewBookingStore()
	paymentStore := repository.NewPaymentStore()

	// Initialize application services
	bookingService := application.NewBookingService(log)
	paymentService := application.NewPaymentService(log)

	// The HTTP front-end uses opaque UUID identifiers
	ids := identity.NewUUID()

	// Initialize HTTP handlers
	hotelHandler := handler.NewHotelHandler(hotel)
	customerHandler := handler.NewCustomerHandler(customerStore, ids)
	bookingHandler := handler.NewBookingHandler(bookingService, hotel, customerStore, bookingStore, ids)
	paymentHandler := handler.NewPaymentHandler(paymentService, bookingStore, paymentStore, ids)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeaders())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hotel-reservation"})
	})

	// Register routes
	hotelHandler.RegisterRoutes(&router.RouterGroup)
	customerHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	paymentHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down hotel-reservation...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("hotel-reservation stopped")
}

// seedRooms adds the default inventory the operator starts with.
func seedRooms(hotel *domain.Hotel) error {
	seeds := []struct {
		number string
		kind   domain.RoomType
		price  float64
	}{
		{"101", domain.RoomTypeSingle, 100.0},
		{"102", domain.RoomTypeSingle, 100.0},
		{"103", domain.RoomTypeDouble, 150.0},
		{"104", domain.RoomTypeDouble, 150.0},
		{"105", domain.RoomTypeSuite, 300.0},
	}
	for _, s := range seeds {
		room, err := domain.NewRoom(s.number, s.kind, s.price)
		if err != nil {
			return err
		}
		if err := hotel.AddRoom(room); err != nil {
			return err
		}
	}
	return nil
}
