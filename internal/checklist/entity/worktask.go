package entity

import "time"

// WorkTask is an identification dimension: what the operator was doing.
type WorkTask struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	HasStations bool      `json:"has_stations" gorm:"not null;default:false"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (WorkTask) TableName() string {
	return "work_tasks"
}

// WorkStation belongs to exactly one work task.
type WorkStation struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	Name       string    `json:"name" gorm:"size:200;not null"`
	WorkTaskID string    `json:"work_task_id" gorm:"size:32;not null;index:idx_work_stations_task"`
	SortOrder  int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (WorkStation) TableName() string {
	return "work_stations"
}

// Shift is an identification dimension with plain time-of-day strings
// ("06:00", "14:00"); no timezone handling on purpose.
type Shift struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	StartTime string    `json:"start_time" gorm:"size:8;not null"`
	EndTime   string    `json:"end_time" gorm:"size:8;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}
