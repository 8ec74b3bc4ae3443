package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"internship-alert/cmd/api/handlers"
	"internship-alert/cmd/api/middleware"
	"internship-alert/cmd/api/services"
	"internship-alert/db"
	_ "internship-alert/docs"
	"internship-alert/notify"
	"internship-alert/repositories"
)

// Deps carries everything the routes need. AILogs is nil when the archive
// database is not configured; its route is simply not registered.
type Deps struct {
	Internships *services.InternshipService
	Notifier    *notify.MemoryNotifier
	AILogs      *repositories.AILogRepository
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if db.Enabled() {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "archive": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/internships", handlers.SubmitInternshipHandler(deps.Internships))
		api.GET("/internships", handlers.ListInternshipsHandler(deps.Internships))
		api.GET("/internships/:id", handlers.GetInternshipHandler(deps.Internships))
		api.POST("/internships/:id/save", handlers.ToggleSavedHandler(deps.Internships))

		api.POST("/import/feed", handlers.ImportFeedHandler(deps.Internships))
		api.POST("/import/url", handlers.ImportURLHandler(deps.Internships))

		api.GET("/notifications", handlers.ListNotificationsHandler(deps.Notifier))

		if deps.AILogs != nil {
			api.GET("/ai-logs", handlers.ListAILogsHandler(deps.AILogs))
		}
	}

	return r
}
