package entity

import "time"

// Checklist is a configurable form template. The Include* flags control which
// identification fields are collected before the question steps.
type Checklist struct {
	ID                  string    `json:"id" gorm:"primaryKey;size:32"`
	Name                string    `json:"name" gorm:"size:200;not null"`
	Description         string    `json:"description" gorm:"type:text"`
	IncludeWorkTasks    bool      `json:"include_work_tasks" gorm:"not null;default:false"`
	IncludeWorkStations bool      `json:"include_work_stations" gorm:"not null;default:false"`
	IncludeShifts       bool      `json:"include_shifts" gorm:"not null;default:false"`
	IsActive            bool      `json:"is_active" gorm:"not null;default:true"`
	SortOrder           int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Checklist) TableName() string {
	return "checklists"
}

// ChecklistWorkTask associates a work task with a checklist (many-to-many).
type ChecklistWorkTask struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	ChecklistID string `json:"checklist_id" gorm:"size:32;not null;index:idx_checklist_work_tasks_checklist"`
	WorkTaskID  string `json:"work_task_id" gorm:"size:32;not null"`
}

func (ChecklistWorkTask) TableName() string {
	return "checklist_work_tasks"
}
