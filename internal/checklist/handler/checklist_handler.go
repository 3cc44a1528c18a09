package handler

import (
	"errors"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/form"
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/bouvin87/System-by-Sections/internal/checklist/service"
	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	definitions *service.DefinitionService
	submissions *service.SubmissionService
}

func NewChecklistHandler(definitions *service.DefinitionService, submissions *service.SubmissionService) *ChecklistHandler {
	return &ChecklistHandler{definitions: definitions, submissions: submissions}
}

// List returns active checklists.
// GET /api/v1/checklists
func (h *ChecklistHandler) List(c *gin.Context) {
	checklists, err := h.definitions.ListChecklists(c.Request.Context())
	if err != nil {
		InternalError(c, "failed to list checklists: "+err.Error())
		return
	}
	Success(c, gin.H{"items": checklists})
}

// GetForm returns the full form definition for one checklist.
// GET /api/v1/checklists/:id/form
func (h *ChecklistHandler) GetForm(c *gin.Context) {
	def, err := h.definitions.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "checklist not found")
			return
		}
		InternalError(c, "failed to load form: "+err.Error())
		return
	}
	Success(c, def)
}

// GetPlan returns the wizard step plan for one checklist and work-task
// selection. With exactly one work-task candidate the selection is made
// automatically.
// GET /api/v1/checklists/:id/plan?work_task_id=xxx
func (h *ChecklistHandler) GetPlan(c *gin.Context) {
	def, err := h.definitions.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "checklist not found")
			return
		}
		InternalError(c, "failed to load form: "+err.Error())
		return
	}

	sess := form.NewSession(def.Checklist.ID)
	if def.Checklist.IncludeWorkTasks {
		if id := c.Query("work_task_id"); id != "" {
			task := findWorkTask(def.WorkTasks, id)
			if task == nil {
				BadRequest(c, "unknown work task: "+id)
				return
			}
			sess.SelectWorkTask(task)
		} else {
			sess.AutoSelectWorkTask(def.WorkTasks)
		}
	}

	visible := form.FilterQuestions(def.Questions, def.QuestionLinks, sess.WorkTaskID, def.Checklist.IncludeWorkTasks)
	plan := form.BuildPlan(def.Checklist, visible, def.Categories)

	resp := gin.H{"plan": plan}
	if task := sess.SelectedWorkTask(); task != nil {
		resp["work_task_id"] = task.ID
	}
	Success(c, resp)
}

// InvalidateCache drops the cached form definition after admin edits so the
// next load sees fresh questions and links.
// POST /api/v1/checklists/:id/cache/invalidate
func (h *ChecklistHandler) InvalidateCache(c *gin.Context) {
	h.definitions.Invalidate(c.Request.Context(), c.Param("id"))
	Success(c, gin.H{"invalidated": true})
}

// Validate checks one wizard step against a partial session.
// POST /api/v1/checklists/:id/validate
func (h *ChecklistHandler) Validate(c *gin.Context) {
	var req service.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, plan, err := h.submissions.ValidateStep(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		var badSelection *service.ErrBadSelection
		var badAnswer *service.ErrBadAnswer
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "checklist not found")
		case errors.As(err, &badSelection), errors.As(err, &badAnswer):
			BadRequest(c, err.Error())
		default:
			InternalError(c, "failed to validate step: "+err.Error())
		}
		return
	}

	Success(c, gin.H{
		"result":       result,
		"is_last_step": plan.IsLastStep(req.StepIndex),
		"progress":     form.ProgressPercent(req.StepIndex, plan.TotalSteps),
		"total_steps":  plan.TotalSteps,
	})
}

func findWorkTask(tasks []entity.WorkTask, id string) *entity.WorkTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
