package repository

import (
	"context"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// QuestionRepository stores questions and their work-task scoping links.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListByCategory returns one category's questions in display order.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID string) ([]entity.Question, error) {
	var items []entity.Question
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

// ListWorkTaskLinks returns one question's work-task scoping rows. No rows
// means the question is universal.
func (r *QuestionRepository) ListWorkTaskLinks(ctx context.Context, questionID string) ([]entity.QuestionWorkTask, error) {
	var links []entity.QuestionWorkTask
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Find(&links).Error
	return links, err
}
