package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/pkg/response"
	"github.com/linskybing/workflow-go/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func (h *FormHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if templates == nil {
		templates = []document.FormTemplate{}
	}
	c.JSON(http.StatusOK, templates)
}

func (h *FormHandler) ListForms(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}
	forms, err := h.service.ListForms(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}
	if forms == nil {
		forms = []document.FormDocument{}
	}
	c.JSON(http.StatusOK, forms)
}

// AttachForm godoc
// @Summary Attach a released form to an entity
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.AttachFormDTO true "Form"
// @Success 201 {object} document.FormDocument
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/forms [post]
func (h *FormHandler) AttachForm(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}

	var input document.AttachFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	input.Locale = requestLocale(c, input.Locale)

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	doc, err := h.service.AttachForm(c.Request.Context(), userID, owner, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateForm godoc
// @Summary Edit a form document or mark it completed
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form document ID"
// @Param input body document.UpdateFormDTO true "Changes"
// @Success 200 {object} document.FormDocument
// @Failure 409 {object} response.ErrorResponse
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	var input document.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	input.Locale = requestLocale(c, input.Locale)

	doc, err := h.service.UpdateForm(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteForm(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "form document deleted"})
}

func formIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return id, true
}
