package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/hotelworks/hms/docs"
	"github.com/hotelworks/hms/internal/api/handler"
	"github.com/hotelworks/hms/internal/api/middleware"
	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
	"github.com/hotelworks/hms/internal/core/service"
	"github.com/hotelworks/hms/internal/infrastructure/config"
	"github.com/hotelworks/hms/internal/infrastructure/db/postgres"
	redisinfra "github.com/hotelworks/hms/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with every route registered.
func NewRouter(db *sqlx.DB, rdb *redis.Client, hasher ports.PasswordHasher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hms"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	roomTypeRepo := postgres.NewRoomTypeRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	detailRepo := postgres.NewBookingDetailRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	throttle := redisinfra.NewLoginThrottle(rdb, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)

	// --- Services ---
	authService := service.NewAuthService(userRepo, hasher, throttle, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	userService := service.NewUserService(userRepo, hasher, log)
	roomTypeService := service.NewRoomTypeService(roomTypeRepo, log)
	roomService := service.NewRoomService(roomRepo, roomTypeRepo, log)
	guestService := service.NewGuestService(guestRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	bookingService := service.NewBookingService(bookingRepo, detailRepo, paymentRepo,
		roomRepo, roomTypeRepo, guestRepo, serviceRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roomTypeHandler := handler.NewRoomTypeHandler(roomTypeService)
	roomHandler := handler.NewRoomHandler(roomService)
	guestHandler := handler.NewGuestHandler(guestService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reportHandler := handler.NewReportHandler(reportService)

	auth := middleware.Auth(authService)
	require := func(cap domain.Capability) echo.MiddlewareFunc {
		return middleware.Require(authService, cap)
	}

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Users (Manager only) ---
	users := e.Group("/users", auth, require(domain.CapUsersManage))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate)
	// Password changes authorize in the service so owners can change their own.
	e.PUT("/users/:id/password", userHandler.ChangePassword, auth)

	// --- Room types ---
	roomTypes := e.Group("/room-types", auth)
	roomTypes.GET("", roomTypeHandler.List, require(domain.CapRoomTypesRead))
	roomTypes.GET("/:id", roomTypeHandler.Get, require(domain.CapRoomTypesRead))
	roomTypes.POST("", roomTypeHandler.Create, require(domain.CapRoomTypesWrite))
	roomTypes.PUT("/:id", roomTypeHandler.Update, require(domain.CapRoomTypesWrite))
	roomTypes.DELETE("/:id", roomTypeHandler.Delete, require(domain.CapRoomTypesWrite))

	// --- Rooms ---
	rooms := e.Group("/rooms", auth)
	rooms.GET("", roomHandler.List, require(domain.CapRoomsRead))
	rooms.GET("/available", roomHandler.Available, require(domain.CapRoomsRead))
	rooms.GET("/:id", roomHandler.Get, require(domain.CapRoomsRead))
	rooms.POST("", roomHandler.Create, require(domain.CapRoomsWrite))
	rooms.PUT("/:id", roomHandler.Update, require(domain.CapRoomsWrite))
	rooms.PUT("/:id/status", roomHandler.SetStatus, require(domain.CapRoomsStatus))
	rooms.PUT("/:id/housekeeping", roomHandler.SetHousekeeping, require(domain.CapRoomsStatus))
	rooms.DELETE("/:id", roomHandler.Delete, require(domain.CapRoomsWrite))

	// --- Guests ---
	guests := e.Group("/guests", auth)
	guests.GET("", guestHandler.List, require(domain.CapGuestsRead))
	guests.GET("/search", guestHandler.Search, require(domain.CapGuestsRead))
	guests.GET("/:id", guestHandler.Get, require(domain.CapGuestsRead))
	guests.POST("", guestHandler.Create, require(domain.CapGuestsWrite))
	guests.PUT("/:id", guestHandler.Update, require(domain.CapGuestsWrite))
	guests.DELETE("/:id", guestHandler.Delete, require(domain.CapGuestsWrite))

	// --- Service catalog ---
	services := e.Group("/services", auth)
	services.GET("", serviceHandler.List, require(domain.CapServicesRead))
	services.GET("/:id", serviceHandler.Get, require(domain.CapServicesRead))
	services.POST("", serviceHandler.Create, require(domain.CapServicesWrite))
	services.PUT("/:id", serviceHandler.Update, require(domain.CapServicesWrite))
	services.PUT("/:id/price", serviceHandler.ChangePrice, require(domain.CapServicesWrite))
	services.DELETE("/:id", serviceHandler.Delete, require(domain.CapServicesWrite))

	// --- Bookings ---
	bookings := e.Group("/bookings", auth)
	bookings.GET("", bookingHandler.History, require(domain.CapBookingsAdmin))
	bookings.GET("/today", bookingHandler.Today, require(domain.CapBookingsRead))
	bookings.GET("/:id", bookingHandler.Get, require(domain.CapBookingsRead))
	bookings.POST("", bookingHandler.Create, require(domain.CapBookingsWrite))
	bookings.PUT("/:id", bookingHandler.Update, require(domain.CapBookingsWrite))
	bookings.POST("/:id/checkin", bookingHandler.CheckIn, require(domain.CapBookingsWrite))
	bookings.POST("/:id/checkout", bookingHandler.CheckOut, require(domain.CapBookingsWrite))
	bookings.POST("/:id/cancel", bookingHandler.Cancel, require(domain.CapBookingsWrite))
	bookings.POST("/:id/no-show", bookingHandler.MarkNoShow, require(domain.CapBookingsWrite))
	bookings.DELETE("/:id", bookingHandler.Delete, require(domain.CapBookingsAdmin))
	bookings.GET("/:id/details", bookingHandler.Details, require(domain.CapBookingsRead))
	bookings.POST("/:id/details", bookingHandler.AddDetail, require(domain.CapBookingsWrite))
	bookings.DELETE("/:id/details/:detail_id", bookingHandler.RemoveDetail, require(domain.CapBookingsWrite))
	bookings.GET("/:id/payments", bookingHandler.Payments, require(domain.CapBookingsRead))
	bookings.POST("/:id/payments", bookingHandler.AddPayment, require(domain.CapBookingsWrite))
	bookings.DELETE("/:id/payments/:payment_id", bookingHandler.RemovePayment, require(domain.CapBookingsAdmin))

	// --- Reports ---
	reports := e.Group("/reports", auth, require(domain.CapReportsRead))
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/revenue/room-types", reportHandler.RevenueByRoomType)
	reports.GET("/revenue/services", reportHandler.RevenueByService)
	reports.GET("/guests/nationality", reportHandler.GuestNationality)
	reports.GET("/bookings/daily", reportHandler.BookingsPerDay)

	return e
}
