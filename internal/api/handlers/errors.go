package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/domain/entity"
	"github.com/linskybing/workflow-go/pkg/response"
)

// writeError maps service errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrInvalidRequest),
		errors.Is(err, application.ErrInvalidEntityRef),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, entity.ErrUnknownEntityType):
		status = http.StatusBadRequest
	case errors.Is(err, application.ErrDocumentNotFound),
		errors.Is(err, application.ErrFileNotFound),
		errors.Is(err, application.ErrTemplateNotReleased):
		status = http.StatusNotFound
	case errors.Is(err, application.ErrDocumentCompleted):
		status = http.StatusConflict
	case errors.Is(err, application.ErrNoNotifier):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}

// entityRefParam reads the :type and :id path params.
func entityRefParam(c *gin.Context) (entity.EntityRef, bool) {
	ref, err := entity.ParseRef(c.Param("type"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return entity.EntityRef{}, false
	}
	return ref, true
}

// requestLocale prefers the body value, then the first Accept-Language tag.
func requestLocale(c *gin.Context, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	header := c.GetHeader("Accept-Language")
	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	return strings.TrimSpace(tag)
}

func optionalRefDTO(dto *entity.RefDTO) (*entity.EntityRef, error) {
	if dto == nil {
		return nil, nil
	}
	ref, err := dto.Ref()
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
