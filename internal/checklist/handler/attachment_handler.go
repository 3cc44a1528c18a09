package handler

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/bouvin87/System-by-Sections/internal/checklist/service"
	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	svc *service.AttachmentService
}

func NewAttachmentHandler(svc *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload stores one file for a file-type question. The returned attachment id
// is what the client submits as the answer value.
// POST /api/v1/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "failed to open upload: "+err.Error())
		return
	}
	defer file.Close()

	attachment, err := h.svc.Upload(
		c.Request.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		GetOperatorName(c),
	)
	if err != nil {
		InternalError(c, "failed to store upload: "+err.Error())
		return
	}
	Created(c, attachment)
}

// Download streams one stored attachment.
// GET /api/v1/attachments/:id
func (h *AttachmentHandler) Download(c *gin.Context) {
	reader, attachment, err := h.svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "attachment not found")
			return
		}
		InternalError(c, "failed to open attachment: "+err.Error())
		return
	}
	defer reader.Close()

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(attachment.FileName)))
	if _, err := io.Copy(c.Writer, reader); err != nil {
		InternalError(c, "failed to stream attachment: "+err.Error())
	}
}
