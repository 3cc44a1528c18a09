package form

import (
	"strings"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
)

// Field labels reported for identification-step violations. Question-step
// violations are reported with the question text instead.
const (
	LabelOperatorName = "operator name"
	LabelWorkTask     = "work task"
	LabelWorkStation  = "work station"
	LabelShift        = "shift"
)

// Result is the outcome of validating one step. Missing holds every
// unsatisfied field label so the caller can surface them in one message.
type Result struct {
	OK      bool     `json:"ok"`
	Missing []string `json:"missing"`
}

// Validate checks whether the session satisfies one step. All violations are
// collected, never short-circuited, in declaration order. Validation failure
// is a value, not an error.
func Validate(step Step, checklist entity.Checklist, workTasks []entity.WorkTask, sess *Session, plan Plan) Result {
	var missing []string

	switch step.Kind {
	case StepKindIdentification:
		if strings.TrimSpace(sess.OperatorName) == "" {
			missing = append(missing, LabelOperatorName)
		}
		if checklist.IncludeWorkTasks && sess.WorkTaskID == "" {
			missing = append(missing, LabelWorkTask)
		}
		if checklist.IncludeWorkStations && sess.WorkTaskID != "" {
			if task := findWorkTask(workTasks, sess.WorkTaskID); task != nil && task.HasStations && sess.WorkStationID == "" {
				missing = append(missing, LabelWorkStation)
			}
		}
		if checklist.IncludeShifts && sess.ShiftID == "" {
			missing = append(missing, LabelShift)
		}

	case StepKindCategory:
		if cq, ok := plan.CategoryForStep(step); ok {
			for _, q := range cq.Questions {
				if !q.IsRequired {
					continue
				}
				if !answerSatisfies(q, sess) {
					missing = append(missing, q.Text)
				}
			}
		}
	}

	return Result{OK: len(missing) == 0, Missing: missing}
}

// CanAdvance is the navigation-gating view of Validate.
func CanAdvance(step Step, checklist entity.Checklist, workTasks []entity.WorkTask, sess *Session, plan Plan) bool {
	return Validate(step, checklist, workTasks, sess, plan).OK
}

// answerSatisfies applies the per-type presence rules: a checkbox is
// satisfied only by exactly true; every other type by any stored value that
// is not nil and not the empty string. false and 0 count as present.
func answerSatisfies(q entity.Question, sess *Session) bool {
	value, ok := sess.Answer(q.ID)
	if !ok || value == nil {
		return false
	}
	if q.Type == entity.QuestionTypeCheckbox {
		b, isBool := value.(bool)
		return isBool && b
	}
	if s, isString := value.(string); isString && s == "" {
		return false
	}
	return true
}

func findWorkTask(tasks []entity.WorkTask, id string) *entity.WorkTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
