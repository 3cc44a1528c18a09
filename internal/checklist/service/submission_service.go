package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/form"
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitRequest is the client payload for a full submission. Answers are keyed
// by question id; unknown keys are ignored so stale clients fail soft.
type SubmitRequest struct {
	OperatorName  string                 `json:"operator_name"`
	WorkTaskID    *string                `json:"work_task_id"`
	WorkStationID *string                `json:"work_station_id"`
	ShiftID       *string                `json:"shift_id"`
	Responses     map[string]interface{} `json:"responses"`
}

// ValidateRequest checks one wizard step against a partial session.
type ValidateRequest struct {
	StepIndex int `json:"step_index"`
	SubmitRequest
}

// ValidationError carries every unsatisfied field label for one submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// ErrBadSelection marks identification values that do not exist in the form
// definition (unknown work task, station or shift id).
type ErrBadSelection struct {
	Field string
	Value string
}

func (e *ErrBadSelection) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Field, e.Value)
}

// ErrBadAnswer marks a response value whose shape does not match its
// question type.
type ErrBadAnswer struct {
	Question string
	Err      error
}

func (e *ErrBadAnswer) Error() string {
	return fmt.Sprintf("question %q: %v", e.Question, e.Err)
}

func (e *ErrBadAnswer) Unwrap() error {
	return e.Err
}

// SubmissionService re-runs the whole form pipeline server side: filter,
// plan, per-step validation, then assembly and persistence. Client-side
// gating is a convenience only; this is the authority.
type SubmissionService struct {
	definitions *DefinitionService
	responses   *repository.ResponseRepository
	logger      *zap.Logger
}

func NewSubmissionService(definitions *DefinitionService, responses *repository.ResponseRepository, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{definitions: definitions, responses: responses, logger: logger}
}

// Submit validates and persists one submission. A *ValidationError return
// means the payload was well formed but incomplete.
func (s *SubmissionService) Submit(ctx context.Context, checklistID string, req SubmitRequest) (*entity.ChecklistResponse, error) {
	def, err := s.definitions.Load(ctx, checklistID)
	if err != nil {
		return nil, err
	}

	sess, plan, err := s.buildSession(def, req)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, step := range plan.Steps {
		result := form.Validate(step, def.Checklist, def.WorkTasks, sess, plan)
		missing = append(missing, result.Missing...)
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	payload := form.Assemble(def.Checklist, sess)
	response := &entity.ChecklistResponse{
		ID:           uuid.New().String()[:32],
		ChecklistID:  checklistID,
		OperatorName: strings.TrimSpace(payload.OperatorName),
		Answers:      entity.JSONB(payload.Responses),
		IsCompleted:  payload.IsCompleted,
		SubmittedAt:  time.Now(),
	}
	if payload.WorkTaskID.Included {
		response.WorkTaskID = payload.WorkTaskID.Value
	}
	if payload.WorkStationID.Included {
		response.WorkStationID = payload.WorkStationID.Value
	}
	if payload.ShiftID.Included {
		response.ShiftID = payload.ShiftID.Value
	}

	if err := s.responses.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}

	s.logger.Info("checklist submitted",
		zap.String("checklist_id", checklistID),
		zap.String("response_id", response.ID),
		zap.Int("answers", len(response.Answers)))
	return response, nil
}

// List returns a page of submissions, newest first.
func (s *SubmissionService) List(ctx context.Context, checklistID string, page, pageSize int) ([]entity.ChecklistResponse, int64, error) {
	return s.responses.ListByChecklist(ctx, checklistID, page, pageSize)
}

// Get returns one submission.
func (s *SubmissionService) Get(ctx context.Context, id string) (*entity.ChecklistResponse, error) {
	return s.responses.FindByID(ctx, id)
}

// ValidateStep validates one step of a partial session without persisting.
func (s *SubmissionService) ValidateStep(ctx context.Context, checklistID string, req ValidateRequest) (form.Result, form.Plan, error) {
	def, err := s.definitions.Load(ctx, checklistID)
	if err != nil {
		return form.Result{}, form.Plan{}, err
	}

	sess, plan, err := s.buildSession(def, req.SubmitRequest)
	if err != nil {
		return form.Result{}, form.Plan{}, err
	}
	if req.StepIndex < 0 || req.StepIndex >= len(plan.Steps) {
		return form.Result{}, form.Plan{}, &ErrBadSelection{Field: "step", Value: fmt.Sprintf("%d", req.StepIndex)}
	}

	result := form.Validate(plan.Steps[req.StepIndex], def.Checklist, def.WorkTasks, sess, plan)
	return result, plan, nil
}

// buildSession replays the request into a form session, applying the same
// selection and answer rules the interactive path uses. Answer type errors
// surface as plain errors (bad request), not validation results.
func (s *SubmissionService) buildSession(def *FormDefinition, req SubmitRequest) (*form.Session, form.Plan, error) {
	sess := form.NewSession(def.Checklist.ID)
	sess.SetOperatorName(req.OperatorName)

	if def.Checklist.IncludeWorkTasks {
		if req.WorkTaskID != nil && *req.WorkTaskID != "" {
			task := findTask(def.WorkTasks, *req.WorkTaskID)
			if task == nil {
				return nil, form.Plan{}, &ErrBadSelection{Field: "work task", Value: *req.WorkTaskID}
			}
			sess.SelectWorkTask(task)
		} else {
			sess.AutoSelectWorkTask(def.WorkTasks)
		}
	}
	if def.Checklist.IncludeWorkStations && req.WorkStationID != nil && *req.WorkStationID != "" {
		if findStation(def.WorkStations, *req.WorkStationID) == nil {
			return nil, form.Plan{}, &ErrBadSelection{Field: "work station", Value: *req.WorkStationID}
		}
		sess.SelectWorkStation(*req.WorkStationID)
	}
	if def.Checklist.IncludeShifts && req.ShiftID != nil && *req.ShiftID != "" {
		if findShift(def.Shifts, *req.ShiftID) == nil {
			return nil, form.Plan{}, &ErrBadSelection{Field: "shift", Value: *req.ShiftID}
		}
		sess.SelectShift(*req.ShiftID)
	}

	visible := form.FilterQuestions(def.Questions, def.QuestionLinks, sess.WorkTaskID, def.Checklist.IncludeWorkTasks)
	plan := form.BuildPlan(def.Checklist, visible, def.Categories)

	for _, q := range visible {
		value, ok := req.Responses[q.ID]
		if !ok {
			continue
		}
		if err := sess.SetAnswer(q, value); err != nil {
			return nil, form.Plan{}, &ErrBadAnswer{Question: q.Text, Err: err}
		}
	}
	return sess, plan, nil
}

func findTask(tasks []entity.WorkTask, id string) *entity.WorkTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func findStation(stations []entity.WorkStation, id string) *entity.WorkStation {
	for i := range stations {
		if stations[i].ID == id {
			return &stations[i]
		}
	}
	return nil
}

func findShift(shifts []entity.Shift, id string) *entity.Shift {
	for i := range shifts {
		if shifts[i].ID == id {
			return &shifts[i]
		}
	}
	return nil
}
