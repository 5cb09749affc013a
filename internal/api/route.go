package api

import (
	"Prism/internal/api/middleware"
	"Prism/internal/pkg/logger"
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
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		dashboardGroup := apiGroup.Group("/dashboard")
		{
			dashboardGroup.GET("", group.DashboardHandler.GetDashboard)
			dashboardGroup.GET("/validation", group.DashboardHandler.GetValidation)
			dashboardGroup.GET("/posts", group.DashboardHandler.GetPosts)
			dashboardGroup.GET("/audit", group.DashboardHandler.GetLastAudit)
		}
	}

	return r
}
