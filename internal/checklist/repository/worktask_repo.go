package repository

import (
	"context"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"gorm.io/gorm"
)

// WorkTaskRepository stores work tasks.
type WorkTaskRepository struct {
	db *gorm.DB
}

func NewWorkTaskRepository(db *gorm.DB) *WorkTaskRepository {
	return &WorkTaskRepository{db: db}
}

// ListAll returns every work task in display order.
func (r *WorkTaskRepository) ListAll(ctx context.Context) ([]entity.WorkTask, error) {
	var items []entity.WorkTask
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&items).Error
	return items, err
}

// WorkStationRepository stores work stations.
type WorkStationRepository struct {
	db *gorm.DB
}

func NewWorkStationRepository(db *gorm.DB) *WorkStationRepository {
	return &WorkStationRepository{db: db}
}

// ListAll returns every work station in display order.
func (r *WorkStationRepository) ListAll(ctx context.Context) ([]entity.WorkStation, error) {
	var items []entity.WorkStation
	err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&items).Error
	return items, err
}
