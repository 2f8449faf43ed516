package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
)

type Handlers struct {
	Workflow   *WorkflowHandler
	Form       *FormHandler
	File       *FileHandler
	Attachment *AttachmentHandler
	Health     *HealthHandler
	Router     *gin.Engine
}

func New(svc *application.Services, checks map[string]Pinger, router *gin.Engine) *Handlers {
	h := &Handlers{
		Workflow:   NewWorkflowHandler(svc),
		Form:       NewFormHandler(svc.Form),
		File:       NewFileHandler(svc.File),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Health:     NewHealthHandler(checks),
		Router:     router,
	}
	return h
}
