package repository

import (
	"context"
	"errors"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// ResponseRepository stores submitted checklist responses.
type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create persists a submission.
func (r *ResponseRepository) Create(ctx context.Context, response *entity.ChecklistResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

// FindByID looks up one submission.
func (r *ResponseRepository) FindByID(ctx context.Context, id string) (*entity.ChecklistResponse, error) {
	var item entity.ChecklistResponse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListByChecklist returns a page of submissions, newest first.
func (r *ResponseRepository) ListByChecklist(ctx context.Context, checklistID string, page, pageSize int) ([]entity.ChecklistResponse, int64, error) {
	var items []entity.ChecklistResponse
	var total int64

	query := r.db.WithContext(ctx).
		Model(&entity.ChecklistResponse{}).
		Where("checklist_id = ?", checklistID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("submitted_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

// ListAllByChecklist returns every submission for export, oldest first.
func (r *ResponseRepository) ListAllByChecklist(ctx context.Context, checklistID string) ([]entity.ChecklistResponse, error) {
	var items []entity.ChecklistResponse
	err := r.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Order("submitted_at ASC").
		Find(&items).Error
	return items, err
}
