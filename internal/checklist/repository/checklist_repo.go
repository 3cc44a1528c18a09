package repository

import (
	"context"
	"errors"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// ChecklistRepository stores checklist templates and their work-task links.
type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// List returns active checklists in display order.
func (r *ChecklistRepository) List(ctx context.Context) ([]entity.Checklist, error) {
	var items []entity.Checklist
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&items).Error
	return items, err
}

// FindByID looks up one checklist.
func (r *ChecklistRepository) FindByID(ctx context.Context, id string) (*entity.Checklist, error) {
	var item entity.Checklist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// ListWorkTaskLinks returns the checklist's work-task associations.
func (r *ChecklistRepository) ListWorkTaskLinks(ctx context.Context, checklistID string) ([]entity.ChecklistWorkTask, error) {
	var links []entity.ChecklistWorkTask
	err := r.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Find(&links).Error
	return links, err
}
