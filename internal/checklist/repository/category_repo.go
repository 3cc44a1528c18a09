package repository

import (
	"context"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// CategoryRepository stores question categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListByChecklist returns the checklist's categories in display order. The
// step planner relies on this order; it is never re-sorted downstream.
func (r *CategoryRepository) ListByChecklist(ctx context.Context, checklistID string) ([]entity.Category, error) {
	var items []entity.Category
	err := r.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Order("sort_order ASC, name ASC").
		Find(&items).Error
	return items, err
}
