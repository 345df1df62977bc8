package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/config"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/api/handler"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/api/middleware"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/internal/model"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/jwt"
	"github.com/MohammedJabivullah/OnlineCourtBookingManagementSyatem/pkg/redis"
)

const (
	admin  = model.RoleAdmin
	lawyer = model.RoleLawyer
	client = model.RoleClient
)

// Setup builds the gin engine. rdb may be nil; the blacklist and rate limiter then fail open.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	// keep the interfaces nil rather than typed-nil when Redis is down
	var (
		blacklist middleware.Blacklist
		limiter   middleware.RateLimiter
	)
	if rdb != nil {
		blacklist = rdb
		limiter = rdb
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	authLimit := middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, time.Minute)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authLimit, h.Auth.Signup)
			auth.POST("/login", authLimit, h.Auth.Login)
			auth.POST("/refresh", authLimit, h.Auth.Refresh)
		}
		v1.GET("/lawyers", h.User.ListLawyers)
		v1.GET("/lawyers/:id/availability", h.Availability.Lawyer)
		v1.GET("/courtrooms", h.Courtroom.ListCourtrooms)
		v1.GET("/availability", h.Availability.Courtrooms)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, blacklist))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			authorized.GET("/users", middleware.RoleAuth(admin), h.User.ListUsers)
			authorized.GET("/clients", middleware.RoleAuth(admin, lawyer), h.User.ListClients)

			courtrooms := authorized.Group("/courtrooms")
			{
				courtrooms.POST("", middleware.RoleAuth(admin), h.Courtroom.CreateCourtroom)
				courtrooms.PATCH("/:id", middleware.RoleAuth(admin), h.Courtroom.UpdateCourtroom)
			}

			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.ListBookings)
				bookings.POST("", middleware.RoleAuth(lawyer), h.Booking.CreateBooking)
				bookings.POST("/:id/approve", middleware.RoleAuth(admin), h.Booking.ApproveBooking)
				bookings.DELETE("/:id", middleware.RoleAuth(admin), h.Booking.RemoveBooking)
			}

			appointments := authorized.Group("/appointments")
			{
				appointments.GET("", h.Appointment.ListAppointments)
				appointments.POST("", middleware.RoleAuth(client), h.Appointment.CreateAppointment)
				appointments.POST("/:id/approve", middleware.RoleAuth(lawyer), h.Appointment.ApproveAppointment)
				appointments.DELETE("/:id", middleware.RoleAuth(lawyer, admin), h.Appointment.RemoveAppointment)
			}

			cases := authorized.Group("/cases")
			{
				cases.GET("", middleware.RoleAuth(admin, lawyer), h.Case.ListCases)
				cases.GET("/:id", h.Case.GetCase)
				cases.POST("", middleware.RoleAuth(lawyer), h.Case.CreateCase)
			}

			reports := authorized.Group("/reports", middleware.RoleAuth(admin, lawyer))
			{
				reports.GET("/bookings", h.Report.Bookings)
				reports.GET("/appointments", h.Report.Appointments)
			}

			authorized.GET("/calendar.ics", h.Calendar.Feed)
		}
	}

	return r
}
