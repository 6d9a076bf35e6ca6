package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"venuecrew/backend/config"
	"venuecrew/backend/internal/api/handler"
	"venuecrew/backend/internal/api/middleware"
	"venuecrew/backend/internal/model"
	"venuecrew/backend/pkg/jwt"
	"venuecrew/backend/pkg/redis"
)

// managerRoles guard the scheduling and staffing endpoints.
var managerRoles = []string{model.RoleManager, model.RoleGeneralManager}

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, 300, time.Minute))
	v1.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		manager := middleware.RoleAuth(managerRoles...)

		// venues
		venues := v1.Group("/venues")
		{
			venues.GET("", h.Venue.List)
			venues.GET("/:id", h.Venue.Get)
			venues.POST("", manager, h.Venue.Create)
			venues.PATCH("/:id", manager, h.Venue.Update)
			venues.DELETE("/:id", middleware.RoleAuth(model.RoleGeneralManager), h.Venue.Delete)
		}

		// staff directory
		staff := v1.Group("/staff")
		{
			staff.GET("", h.Staff.List)
			staff.GET("/:id", h.Staff.Get)
			staff.POST("", manager, h.Staff.Create)
			staff.PATCH("/:id", manager, h.Staff.Update)
			staff.DELETE("/:id", manager, h.Staff.Delete)
			staff.PUT("/:id/venues", manager, h.Staff.SetVenues)

			// availability (self-or-manager enforced in the handler)
			staff.GET("/:id/availability", h.Availability.Get)
			staff.PUT("/:id/availability", h.Availability.Submit)
			staff.POST("/:id/availability/lock", manager, h.Availability.Lock)
			staff.POST("/:id/availability/unlock", manager, h.Availability.Unlock)
			staff.POST("/:id/availability/relock", manager, h.Availability.Relock)
		}

		// shifts and the staffing engine
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", h.Shift.List)
			shifts.GET("/:id", h.Shift.Get)
			shifts.POST("", manager, h.Shift.Create)
			shifts.PATCH("/:id", manager, h.Shift.Update)
			shifts.DELETE("/:id", manager, h.Shift.Delete)

			shifts.POST("/:id/trade", h.Shift.PostTrade)
			shifts.DELETE("/:id/trade", h.Shift.ClearTrade)

			shifts.GET("/:id/assignments", h.Assignment.List)
			shifts.POST("/:id/assignments", manager, h.Assignment.Assign)
			shifts.POST("/:id/validate", manager, h.Assignment.Validate)
			shifts.GET("/:id/candidates", manager, h.Assignment.Candidates)
			shifts.POST("/:id/auto-assign", manager, h.Assignment.AutoAssign)

			shifts.POST("/:id/tips", manager, h.Tips.SetTips)
			shifts.POST("/:id/tips/publish", manager, h.Tips.Publish)
		}

		// batch planner; lives outside /shifts so the static segment does
		// not collide with the :id wildcard
		v1.POST("/auto-schedule", manager, h.Assignment.AutoSchedule)

		// assignments
		v1.DELETE("/assignments/:id", manager, h.Assignment.Unassign)

		// overrides (owner check for resolution happens in the service)
		overrides := v1.Group("/overrides")
		{
			overrides.GET("", h.Override.List)
			overrides.GET("/:id", h.Override.Get)
			overrides.POST("", manager, h.Override.Create)
			overrides.PATCH("/:id", h.Override.Resolve)
		}

		// engine settings
		v1.GET("/system-config", h.SystemConfig.Get)
		v1.PATCH("/system-config", middleware.RoleAuth(model.RoleGeneralManager), h.SystemConfig.Update)

		// notifications
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.POST("/:id/read", h.Notification.MarkRead)
		}

		// exports
		v1.GET("/export/roster", manager, h.Export.Roster)
	}

	return r
}
