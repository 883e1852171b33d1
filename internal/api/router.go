package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smartoffice/room-booking-api/internal/api/handler"
	"github.com/smartoffice/room-booking-api/internal/api/middleware"
	"github.com/smartoffice/room-booking-api/internal/core/service"
	"github.com/smartoffice/room-booking-api/internal/infrastructure/config"
	"github.com/smartoffice/room-booking-api/internal/infrastructure/db/postgres"
	redisdb "github.com/smartoffice/room-booking-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowHeaders: []string{middleware.TokenHeader, echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echoprometheus.NewMiddleware("room_booking"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, roleRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)
	bookingService := service.NewBookingService(bookingRepo, userRepo, roleRepo)
	roomService := service.NewRoomService(roomRepo)
	userService := service.NewUserService(userRepo, roleRepo)

	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	roomHandler := handler.NewRoomHandler(roomService)
	userHandler := handler.NewUserHandler(userService)

	authed := middleware.Auth(cfg.JWTSecret, denylist)
	moderator := middleware.IsModerator(roleRepo)
	moderatorOrAdmin := middleware.IsModeratorOrAdmin(roleRepo)
	admin := middleware.IsAdmin(roleRepo)

	// --- Root + operational endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to smart application."})
	})
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/logout", authHandler.Logout)

	// --- Booking routes ---
	bookings := e.Group("/api/bookings", authed)
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:bookingId", bookingHandler.Get)
	bookings.GET("/:bookingId/users", bookingHandler.Attendees)
	bookings.POST("", bookingHandler.Create)
	bookings.POST("/:bookingId/users", bookingHandler.AddUsers, moderatorOrAdmin)
	bookings.PUT("/:bookingId", bookingHandler.Update, moderatorOrAdmin)
	bookings.PUT("/:bookingId/approve", bookingHandler.Approve, moderator)
	bookings.DELETE("/:bookingId", bookingHandler.Delete, moderatorOrAdmin)
	bookings.DELETE("/:bookingId/users/:userId", bookingHandler.RemoveUser, moderatorOrAdmin)

	// --- Room routes ---
	rooms := e.Group("/api/rooms", authed)
	rooms.GET("", roomHandler.List)
	rooms.GET("/:id", roomHandler.Get)
	rooms.GET("/:roomId/bookings", roomHandler.Bookings)
	rooms.POST("", roomHandler.Create, admin)
	rooms.PUT("/:id", roomHandler.Update, moderatorOrAdmin)
	rooms.DELETE("/:id", roomHandler.Delete, admin)

	// --- User routes ---
	users := e.Group("/api/users", authed)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/bookings", userHandler.Bookings)
	users.POST("", userHandler.Create, admin)
	users.PUT("/:id", userHandler.Update, admin)
	users.DELETE("/:id", userHandler.Delete, admin)

	sessionUser := e.Group("/api/user", authed)
	sessionUser.GET("", userHandler.SessionInfo)
	sessionUser.GET("/bookings", userHandler.SessionBookings)

	return e
}
