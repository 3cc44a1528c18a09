package repository

import (
	"context"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// ShiftRepository stores shifts.
type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// ListAll returns every shift ordered by start time.
func (r *ShiftRepository) ListAll(ctx context.Context) ([]entity.Shift, error) {
	var items []entity.Shift
	err := r.db.WithContext(ctx).Order("sort_order ASC, start_time ASC").Find(&items).Error
	return items, err
}
