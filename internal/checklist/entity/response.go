package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONB generic jsonb map
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan JSONB: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// ChecklistResponse is one submitted form session. The identification ids are
// pointers: they are persisted only when the checklist's Include* flag asked
// for them.
type ChecklistResponse struct {
	ID            string    `json:"id" gorm:"primaryKey;size:32"`
	ChecklistID   string    `json:"checklist_id" gorm:"size:32;not null;index:idx_checklist_responses_checklist"`
	OperatorName  string    `json:"operator_name" gorm:"size:200;not null"`
	WorkTaskID    *string   `json:"work_task_id" gorm:"size:32"`
	WorkStationID *string   `json:"work_station_id" gorm:"size:32"`
	ShiftID       *string   `json:"shift_id" gorm:"size:32"`
	Answers       JSONB     `json:"answers" gorm:"type:jsonb;not null;default:'{}'"`
	IsCompleted   bool      `json:"is_completed" gorm:"not null;default:false"`
	SubmittedAt   time.Time `json:"submitted_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ChecklistResponse) TableName() string {
	return "checklist_responses"
}

// Attachment is a stored file for a file-type question answer. The answer
// value itself stays the original file name string; the attachment id links
// it to object storage.
type Attachment struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	FileName    string    `json:"file_name" gorm:"size:300;not null"`
	ObjectPath  string    `json:"object_path" gorm:"size:500;not null"`
	Size        int64     `json:"size" gorm:"not null;default:0"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	UploadedBy  string    `json:"uploaded_by" gorm:"size:200"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
