package api

import (
	"Pulse/internal/api/middleware"
	"Pulse/internal/model"
	"Pulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/oauth/:provider", group.AuthHandler.OAuthLogin)
			authGroup.GET("/session", group.AuthHandler.GetSession)
			authGroup.POST("/logout", group.AuthHandler.Logout)
		}

		contentGroup := apiGroup.Group("/content")
		contentGroup.Use(middleware.AuthMiddleware())
		{
			contentGroup.GET("", group.ContentHandler.ListContent)
			contentGroup.GET("/top", group.ContentHandler.TopContent)
			contentGroup.GET("/recent", group.ContentHandler.RecentContent)
			contentGroup.GET("/:platform/:content_id/samples", group.SampleHandler.GetSeries)
			contentGroup.GET("/:platform/:content_id/growth", group.SampleHandler.GetGrowth)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(middleware.AuthMiddleware())
		{
			dashboardGroup.GET("/summary", group.DashboardHandler.Summary)
		}

		apiGroup.GET("/clients", middleware.AuthMiddleware(), group.ContentHandler.ListClients)

		// 需要登录 & 拥有 admin 角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleAdmin))
		{
			adminGroup.GET("/inputs", group.InputHandler.ListInputs)
			adminGroup.POST("/inputs", group.InputHandler.CreateInput)
			adminGroup.PUT("/inputs/:id", group.InputHandler.UpdateInput)
			adminGroup.POST("/inputs/:id/refresh", group.InputHandler.RefreshInput)
			adminGroup.DELETE("/inputs/:id", group.InputHandler.DeleteInput)
		}
	}

	return r
}
