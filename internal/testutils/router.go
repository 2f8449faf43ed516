package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/api/handlers"
	"github.com/linskybing/workflow-go/internal/api/routes"
	"github.com/linskybing/workflow-go/internal/application"
)

func SetupRouter(svc *application.Services, checks map[string]handlers.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, svc, checks)
	return r
}
