package form

import "github.com/bouvin87/System-by-Sections/internal/checklist/entity"

// StepKind discriminates wizard steps.
type StepKind string

const (
	StepKindIdentification StepKind = "identification"
	StepKindCategory       StepKind = "category"
)

// Step is one wizard step. CategoryID and Name are set for category steps.
type Step struct {
	Kind       StepKind `json:"kind"`
	CategoryID string   `json:"category_id,omitempty"`
	Name       string   `json:"name,omitempty"`
}

// CategoryQuestions pairs a category with its visible questions.
type CategoryQuestions struct {
	Category  entity.Category   `json:"category"`
	Questions []entity.Question `json:"questions"`
}

// Plan is the ordered wizard layout for one checklist and work-task selection.
type Plan struct {
	Steps      []Step              `json:"steps"`
	Categories []CategoryQuestions `json:"categories"`
	TotalSteps int                 `json:"total_steps"`
}

// BuildPlan derives the step sequence: one identification step followed by one
// step per category that still has questions after filtering. Categories keep
// the order they were supplied in; empty categories are dropped entirely. A
// checklist with no question-bearing categories yields a single identification
// step whose "next" acts as submit.
func BuildPlan(checklist entity.Checklist, filteredQuestions []entity.Question, categories []entity.Category) Plan {
	questionsByCategory := make(map[string][]entity.Question, len(categories))
	for _, q := range filteredQuestions {
		questionsByCategory[q.CategoryID] = append(questionsByCategory[q.CategoryID], q)
	}

	plan := Plan{
		Steps: []Step{{Kind: StepKindIdentification}},
	}
	for _, cat := range categories {
		questions := questionsByCategory[cat.ID]
		if len(questions) == 0 {
			continue
		}
		plan.Steps = append(plan.Steps, Step{
			Kind:       StepKindCategory,
			CategoryID: cat.ID,
			Name:       cat.Name,
		})
		plan.Categories = append(plan.Categories, CategoryQuestions{
			Category:  cat,
			Questions: questions,
		})
	}
	plan.TotalSteps = len(plan.Steps)
	return plan
}

// CategoryForStep resolves the category content backing a category step.
func (p Plan) CategoryForStep(step Step) (CategoryQuestions, bool) {
	if step.Kind != StepKindCategory {
		return CategoryQuestions{}, false
	}
	for _, cq := range p.Categories {
		if cq.Category.ID == step.CategoryID {
			return cq, true
		}
	}
	return CategoryQuestions{}, false
}

// IsLastStep reports whether advancing from stepIndex means submitting.
func (p Plan) IsLastStep(stepIndex int) bool {
	return stepIndex >= len(p.Steps)-1
}

// ProgressPercent maps a step ordinal to a 0-100 progress value. A plan with a
// single step reports 0 so the UI never divides by zero.
func ProgressPercent(stepIndex, totalSteps int) float64 {
	if totalSteps <= 1 {
		return 0
	}
	return float64(stepIndex) / float64(totalSteps-1) * 100
}
