package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/pkg/response"
)

type AttachmentHandler struct {
	service *application.AttachmentService
}

func NewAttachmentHandler(service *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func relatedSources(refs []entity.EntityRef) []application.RelatedSource {
	sources := make([]application.RelatedSource, 0, len(refs))
	for _, ref := range refs {
		sources = append(sources, application.RelatedSource{Ref: ref})
	}
	return sources
}

// ListAttachments godoc
// @Summary List the merged attachments of an entity and its related entities
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param related query string false "Related entities, e.g. dispatch:9,sale:2"
// @Param q query string false "Search text"
// @Param class query string false "all, pdf, images, documents or other"
// @Success 200 {array} document.AttachmentView
// @Failure 400 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}
	related, err := entity.ParseRefList(c.Query("related"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.service.ListAttachments(c.Request.Context(), owner, relatedSources(related), application.AttachmentFilter{
		Query: c.Query("q"),
		Class: document.ParseFileClass(c.Query("class")),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// BulkDelete godoc
// @Summary Delete selected attachments owned by an entity
// @Description Items that belong to a related entity are reported as skipped.
// @Tags attachments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.BulkDeleteDTO true "Selection"
// @Success 200 {object} document.BulkDeleteResult
// @Router /entities/{type}/{id}/attachments/bulk-delete [post]
func (h *AttachmentHandler) BulkDelete(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}

	var input document.BulkDeleteDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var related []entity.EntityRef
	for _, dto := range input.Related {
		ref, err := dto.Ref()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		related = append(related, ref)
	}

	result, err := h.service.BulkDelete(c.Request.Context(), owner, relatedSources(related), application.AttachmentSelection{
		FormIDs: input.FormIDs,
		FileIDs: input.FileIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
