package handlers

import (
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/workflow-go/internal/application"
	"github.com/linskybing/workflow-go/internal/config"
	"github.com/linskybing/workflow-go/internal/domain/document"
	"github.com/linskybing/workflow-go/pkg/response"
	"github.com/linskybing/workflow-go/pkg/utils"
)

type FileHandler struct {
	service *application.FileService
}

func NewFileHandler(service *application.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) ListFiles(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}
	files, err := h.service.ListFiles(c.Request.Context(), owner)
	if err != nil {
		writeError(c, err)
		return
	}
	if files == nil {
		files = []document.UploadedFile{}
	}
	c.JSON(http.StatusOK, files)
}

// UploadFiles godoc
// @Summary Upload files to an entity
// @Tags files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files"
// @Param category formData string false "Category"
// @Success 201 {array} document.UploadedFile
// @Failure 400 {object} response.ErrorResponse
// @Router /entities/{type}/{id}/files [post]
func (h *FileHandler) UploadFiles(c *gin.Context) {
	owner, ok := entityRefParam(c)
	if !ok {
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "multipart form required"})
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "no files uploaded"})
		return
	}

	uploads := make([]application.FileUpload, 0, len(headers))
	var opened []io.Closer
	defer func() {
		for _, f := range opened {
			if err := f.Close(); err != nil {
				log.Printf("[UploadFiles] WARN close failed: %v", err)
			}
		}
	}()
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read " + fh.Filename})
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, application.FileUpload{
			Name:        fh.Filename,
			ContentType: contentType(fh),
			Size:        fh.Size,
			Content:     f,
		})
	}

	files, err := h.service.Upload(c.Request.Context(), userID, owner, c.PostForm("category"), uploads)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, files)
}

func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func (h *FileHandler) DownloadFile(c *gin.Context) {
	url, err := h.service.DownloadURL(c.Request.Context(), c.Param("id"), config.DownloadURLExpiry)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.URLResponse{URL: url})
}

func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.service.DeleteFile(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "file deleted"})
}
