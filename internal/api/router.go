package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campusgrid/timetable-portal/docs"
	"github.com/campusgrid/timetable-portal/internal/api/handler"
	"github.com/campusgrid/timetable-portal/internal/api/middleware"
	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/service"
	mongostore "github.com/campusgrid/timetable-portal/internal/infrastructure/db/mongo"
	redisfeed "github.com/campusgrid/timetable-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	courseRepo := mongostore.NewCourseRepository(db)
	timetableRepo := mongostore.NewTimetableRepository(db)
	announcementRepo := mongostore.NewAnnouncementRepository(db)
	feed := redisfeed.NewChangeFeed(rdb, log)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	agendaService := service.NewAgendaService(timetableRepo, log)
	courseService := service.NewCourseService(courseRepo, userRepo, feed, log)
	timetableService := service.NewTimetableService(timetableRepo, courseRepo, feed, log)
	announcementService := service.NewAnnouncementService(announcementRepo, feed, log)
	userService := service.NewUserService(userRepo, feed, log)

	authHandler := handler.NewAuthHandler(authService)
	agendaHandler := handler.NewAgendaHandler(agendaService, log)
	streamHandler := handler.NewStreamHandler(feed, agendaService, log)
	courseHandler := handler.NewCourseHandler(courseService)
	timetableHandler := handler.NewTimetableHandler(timetableService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	userHandler := handler.NewUserHandler(userService, authService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleStudent, domain.RoleAdmin, domain.RoleLecturer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Student surface ---
	v1 := e.Group("/v1", auth)
	v1.GET("/timetable/agenda", agendaHandler.Get, anyRole)
	v1.GET("/timetable/stream", streamHandler.Stream, anyRole)
	v1.GET("/announcements", announcementHandler.ListForUser, anyRole)

	// --- Admin surface ---
	admin := v1.Group("/admin", adminOnly)
	admin.GET("/courses", courseHandler.List)
	admin.POST("/courses", courseHandler.Create)
	admin.PUT("/courses/:id", courseHandler.Update)
	admin.DELETE("/courses/:id", courseHandler.Delete)

	admin.GET("/timetable", timetableHandler.List)
	admin.POST("/timetable", timetableHandler.Create)
	admin.PUT("/timetable/:id", timetableHandler.Update)
	admin.DELETE("/timetable/:id", timetableHandler.Delete)

	admin.GET("/announcements", announcementHandler.List)
	admin.POST("/announcements", announcementHandler.Create)
	admin.PUT("/announcements/:id", announcementHandler.Update)
	admin.DELETE("/announcements/:id", announcementHandler.Delete)

	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
