package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories aggregates all checklist repositories.
type Repositories struct {
	Checklist   *ChecklistRepository
	WorkTask    *WorkTaskRepository
	WorkStation *WorkStationRepository
	Shift       *ShiftRepository
	Category    *CategoryRepository
	Question    *QuestionRepository
	Response    *ResponseRepository
	Attachment  *AttachmentRepository
}

// NewRepositories wires every repository onto one gorm handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Checklist:   NewChecklistRepository(db),
		WorkTask:    NewWorkTaskRepository(db),
		WorkStation: NewWorkStationRepository(db),
		Shift:       NewShiftRepository(db),
		Category:    NewCategoryRepository(db),
		Question:    NewQuestionRepository(db),
		Response:    NewResponseRepository(db),
		Attachment:  NewAttachmentRepository(db),
	}
}
