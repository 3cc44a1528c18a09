// Package form implements the dynamic form composition and validation engine:
// question filtering by work task, wizard step planning, step validation and
// submission assembly. Everything in this package is pure and in-memory; the
// service layer owns fetching and persistence.
package form

import "github.com/bouvin87/System-by-Sections/internal/checklist/entity"

// FilterQuestions returns the questions visible for the selected work task,
// order preserved. A question with no link rows is universal and always
// included; a question with links is included only when the selected task is
// among them. When the checklist does not use work tasks, or no task is
// selected yet, all questions pass through unchanged.
func FilterQuestions(questions []entity.Question, links []entity.QuestionWorkTask, selectedWorkTaskID string, usesWorkTasks bool) []entity.Question {
	if !usesWorkTasks || selectedWorkTaskID == "" {
		out := make([]entity.Question, len(questions))
		copy(out, questions)
		return out
	}

	taskIDsByQuestion := make(map[string][]string, len(questions))
	for _, link := range links {
		taskIDsByQuestion[link.QuestionID] = append(taskIDsByQuestion[link.QuestionID], link.WorkTaskID)
	}

	out := make([]entity.Question, 0, len(questions))
	for _, q := range questions {
		taskIDs := taskIDsByQuestion[q.ID]
		if len(taskIDs) == 0 {
			out = append(out, q)
			continue
		}
		for _, id := range taskIDs {
			if id == selectedWorkTaskID {
				out = append(out, q)
				break
			}
		}
	}
	return out
}
