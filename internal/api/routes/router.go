package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/api/handlers"
	"github.com/linskybing/workflow-go/internal/api/middleware"
	"github.com/linskybing/workflow-go/internal/application"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services, checks map[string]handlers.Pinger) *handlers.Handlers {
	handlers_instance := handlers.New(svc, checks, r)

	r.GET("/health", handlers_instance.Health.Health)

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		EntityRoutes(auth, handlers_instance)

		auth.GET("/form-templates", handlers_instance.Form.ListTemplates)

		forms := auth.Group("/forms")
		{
			forms.PUT("/:id", handlers_instance.Form.UpdateForm)
			forms.DELETE("/:id", handlers_instance.Form.DeleteForm)
		}

		files := auth.Group("/files")
		{
			files.GET("/:id/download", handlers_instance.File.DownloadFile)
			files.DELETE("/:id", handlers_instance.File.DeleteFile)
		}

		workflow := auth.Group("/workflow")
		{
			workflow.POST("/copy", handlers_instance.Workflow.Copy)
			workflow.POST("/copy-chain", handlers_instance.Workflow.CopyChain)
		}
	}
	return handlers_instance
}
