package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mutreserve/reservation-system/internal/api/handler"
	"github.com/mutreserve/reservation-system/internal/api/middleware"
	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/service"
	mongodb "github.com/mutreserve/reservation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/mutreserve/reservation-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its backing stores.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("reserve"))

	// --- Dependencies ---
	sessions := redisdb.NewSessionStore(rdb)
	authRepo := mongodb.NewAuthRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	notifications := service.NewSessionNotificationLog()

	authService := service.NewAuthService(authRepo, sessions, cfg.JWTSecret, cfg.TokenTTL, log)
	roomService := service.NewRoomService(roomRepo, notifications, log)
	bookingService := service.NewBookingService(bookingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	notificationHandler := handler.NewNotificationHandler(notifications)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)
	manageRooms := middleware.Capability(domain.CapManageRooms)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Room workflow ---
	rooms := e.Group("/v1/rooms", authMiddleware)
	rooms.GET("", roomHandler.List)
	rooms.POST("", roomHandler.Create, manageRooms)
	rooms.PUT("/:id", roomHandler.Edit, manageRooms)
	rooms.POST("/:id/approve", roomHandler.Approve, manageRooms)
	rooms.POST("/:id/close", roomHandler.Close, manageRooms)
	rooms.DELETE("/:id", roomHandler.Delete, manageRooms)

	// --- Session notifications ---
	e.GET("/v1/notifications", notificationHandler.List, authMiddleware)
	e.DELETE("/v1/notifications", notificationHandler.Clear, authMiddleware)

	// --- Self-service bookings ---
	bookings := e.Group("/v1/bookings", authMiddleware)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.List)
	bookings.DELETE("/:id", bookingHandler.Cancel)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
