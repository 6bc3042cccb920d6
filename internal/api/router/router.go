package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/subaru7958/sports-team-manager/config"
	"github.com/subaru7958/sports-team-manager/internal/api/handler"
	"github.com/subaru7958/sports-team-manager/internal/api/middleware"
	"github.com/subaru7958/sports-team-manager/pkg/jwt"
	"github.com/subaru7958/sports-team-manager/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentTeam)

			// 赛季模块
			seasons := authorized.Group("/seasons")
			{
				seasons.GET("", h.Season.ListSeasons)
				seasons.GET("/:id", h.Season.GetSeason)
				seasons.POST("", h.Season.CreateSeason)
				seasons.DELETE("/:id", h.Season.DeleteSeason)
			}

			// 场地模块
			facilities := authorized.Group("/facilities")
			{
				facilities.GET("", h.Facility.ListFacilities)
				facilities.POST("", h.Facility.CreateFacility)
				facilities.DELETE("/:id", h.Facility.DeleteFacility)
			}

			// 训练组模块
			groups := authorized.Group("/groups")
			{
				groups.GET("", h.Group.ListGroups)
				groups.GET("/:id", h.Group.GetGroup)
			}

			// 日程事件模块
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.ListEvents)
				events.POST("", h.Event.CreateEvent)
				events.PUT("/:id", h.Event.UpdateEvent)
				events.PUT("/:id/delay", h.Event.DelayEvent)
				events.DELETE("/:id", h.Event.DeleteEvent)
			}

			// 日历泳道视图
			calendar := authorized.Group("/calendar")
			{
				calendar.GET("/day", h.Calendar.GetDayView)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/schedule", h.Export.ExportScheduleXLSX)
				export.GET("/calendar", h.Export.ExportScheduleICS)
			}
		}
	}

	return r
}
