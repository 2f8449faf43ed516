package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/api/handlers"
)

// EntityRoutes registers the per-record endpoints under /entities/:type/:id.
func EntityRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	entities := rg.Group("/entities/:type/:id")
	{
		entities.GET("/chain", h.Workflow.GetChain)
		entities.POST("/propagate", h.Workflow.Propagate)
		entities.GET("/trail", h.Workflow.GetTrail)

		entities.GET("/attachments", h.Attachment.ListAttachments)
		entities.POST("/attachments/bulk-delete", h.Attachment.BulkDelete)

		entities.GET("/forms", h.Form.ListForms)
		entities.POST("/forms", h.Form.AttachForm)

		entities.GET("/files", h.File.ListFiles)
		entities.POST("/files", h.File.UploadFiles)
	}
}
