package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/bouvin87/System-by-Sections/internal/checklist/service"
	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	submissions *service.SubmissionService
	exports     *service.ExportService
	definitions *service.DefinitionService
}

func NewResponseHandler(submissions *service.SubmissionService, exports *service.ExportService, definitions *service.DefinitionService) *ResponseHandler {
	return &ResponseHandler{submissions: submissions, exports: exports, definitions: definitions}
}

// Submit validates and stores a submission. Incomplete submissions get a 422
// with the full list of missing field labels.
// POST /api/v1/checklists/:id/responses
func (h *ResponseHandler) Submit(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.OperatorName == "" {
		req.OperatorName = GetOperatorName(c)
	}

	response, err := h.submissions.Submit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var validation *service.ValidationError
		var badSelection *service.ErrBadSelection
		var badAnswer *service.ErrBadAnswer
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusUnprocessableEntity, Response{
				Code:    42200,
				Message: validation.Error(),
				Data:    gin.H{"missing": validation.Missing},
			})
		case errors.As(err, &badSelection), errors.As(err, &badAnswer):
			BadRequest(c, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "checklist not found")
		default:
			InternalError(c, "failed to store submission: "+err.Error())
		}
		return
	}
	Created(c, response)
}

// List returns a page of submissions, newest first.
// GET /api/v1/checklists/:id/responses
func (h *ResponseHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.submissions.List(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		InternalError(c, "failed to list submissions: "+err.Error())
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: totalPages,
		},
	})
}

// Get returns one submission.
// GET /api/v1/responses/:id
func (h *ResponseHandler) Get(c *gin.Context) {
	response, err := h.submissions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "submission not found")
			return
		}
		InternalError(c, "failed to load submission: "+err.Error())
		return
	}
	Success(c, response)
}

// Export streams every submission of a checklist as an xlsx workbook.
// GET /api/v1/checklists/:id/responses/export
func (h *ResponseHandler) Export(c *gin.Context) {
	f, fileName, err := h.exports.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "checklist not found")
			return
		}
		InternalError(c, "failed to export submissions: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(fileName)))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to write workbook: "+err.Error())
	}
}
