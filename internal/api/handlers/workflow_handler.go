package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/pkg/response"
)

type WorkflowHandler struct {
	chain       *application.ChainResolver
	propagation *application.Propagator
	migrator    *application.Migrator
	trail       *application.TrailService
}

func NewWorkflowHandler(svc *application.Services) *WorkflowHandler {
	return &WorkflowHandler{
		chain:       svc.Chain,
		propagation: svc.Propagation,
		migrator:    svc.Migrator,
		trail:       svc.Trail,
	}
}

// GetChain godoc
// @Summary Resolve the records linked to an entity, in discovery order and grouped by workflow stage
// @Tags workflow
// @Security BearerAuth
// @Produce json
// @Param type path string true "Entity type"
// @Param id path int true "Entity ID"
// @Param link_type query string false "Direct link type"
// @Param link_id query int false "Direct link ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/chain [get]
func (h *WorkflowHandler) GetChain(c *gin.Context) {
	source, ok := entityRefParam(c)
	if !ok {
		return
	}

	var link *entity.EntityRef
	if linkType := c.Query("link_type"); linkType != "" {
		ref, err := entity.ParseRef(linkType, c.Query("link_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid direct link: " + err.Error()})
			return
		}
		link = &ref
	}

	chain := h.chain.Resolve(c.Request.Context(), source, link)
	if chain == nil {
		chain = []entity.EntityRef{}
	}
	c.JSON(http.StatusOK, gin.H{
		"source":  source,
		"chain":   chain,
		"grouped": entity.GroupByWorkflow(chain),
	})
}

// Propagate godoc
// @Summary Broadcast a checklist event to an entity and its chain
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.PropagateDTO true "Event"
// @Success 200 {object} application.PropagationReport
// @Failure 400 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/propagate [post]
func (h *WorkflowHandler) Propagate(c *gin.Context) {
	source, ok := entityRefParam(c)
	if !ok {
		return
	}

	var input document.PropagateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	action, err := application.ParseAction(input.Action)
	if err != nil {
		writeError(c, err)
		return
	}
	link, err := optionalRefDTO(input.DirectLink)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid direct link: " + err.Error()})
		return
	}

	report := h.propagation.Propagate(c.Request.Context(), application.PropagationRequest{
		Subject:    input.Subject,
		Source:     source,
		DirectLink: link,
		Action:     action,
		Locale:     requestLocale(c, input.Locale),
	})
	c.JSON(http.StatusOK, report)
}

// GetTrail godoc
// @Summary List the activities or notes written on an entity
// @Tags workflow
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.TrailEntry
// @Failure 422 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/trail [get]
func (h *WorkflowHandler) GetTrail(c *gin.Context) {
	ref, ok := entityRefParam(c)
	if !ok {
		return
	}
	entries, err := h.trail.ListTrail(c.Request.Context(), ref)
	if err != nil {
		writeError(c, err)
		return
	}
	if entries == nil {
		entries = []application.TrailEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Copy godoc
// @Summary Copy form documents from one entity to another
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.CopyDTO true "Source and target"
// @Success 200 {object} response.CopyResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workflow/copy [post]
func (h *WorkflowHandler) Copy(c *gin.Context) {
	var input document.CopyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	source, err := input.Source.Ref()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid source: " + err.Error()})
		return
	}
	target, err := input.Target.Ref()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid target: " + err.Error()})
		return
	}

	n, err := h.migrator.Copy(c.Request.Context(), source, target)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CopyResponse{CopiedCount: n})
}

// CopyChain godoc
// @Summary Copy form documents from several entities onto one target
// @Description When sources is empty the target's resolved chain is used.
// @Tags workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body document.CopyChainDTO true "Target and sources"
// @Success 200 {object} response.CopyChainResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /workflow/copy-chain [post]
func (h *WorkflowHandler) CopyChain(c *gin.Context) {
	var input document.CopyChainDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	target, err := input.Target.Ref()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid target: " + err.Error()})
		return
	}
	link, err := optionalRefDTO(input.DirectLink)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid direct link: " + err.Error()})
		return
	}

	var sources []entity.EntityRef
	for _, dto := range input.Sources {
		ref, err := dto.Ref()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid source: " + err.Error()})
			return
		}
		sources = append(sources, ref)
	}
	if len(sources) == 0 {
		sources = h.migrator.ChainSources(c.Request.Context(), target, link)
	}

	total := h.migrator.CopyFromChain(c.Request.Context(), target, sources)
	c.JSON(http.StatusOK, response.CopyChainResponse{TotalCopied: total})
}
