package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is an ordered list of strings stored as jsonb.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan StringList: %v", value)
	}
	return json.Unmarshal(bytes, l)
}

// Category groups questions; one wizard step per non-empty category.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	ChecklistID string    `json:"checklist_id" gorm:"size:32;not null;index:idx_categories_checklist"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Question types
const (
	QuestionTypeText     = "text"     // free text, string answer
	QuestionTypeChoice   = "val"      // single choice from Options, string answer
	QuestionTypeNumber   = "number"   // numeric, number or numeric-string answer
	QuestionTypeYesNo    = "yesno"    // boolean answer
	QuestionTypeDate     = "date"     // date string answer
	QuestionTypeFile     = "file"     // stored file name string answer
	QuestionTypeStar     = "star"     // star rating, number answer
	QuestionTypeMood     = "mood"     // mood rating, number answer
	QuestionTypeCheckbox = "checkbox" // boolean answer, required means must be true
)

// Question is one form field within a category.
type Question struct {
	ID         string     `json:"id" gorm:"primaryKey;size:32"`
	CategoryID string     `json:"category_id" gorm:"size:32;not null;index:idx_questions_category"`
	Text       string     `json:"text" gorm:"size:500;not null"`
	Type       string     `json:"type" gorm:"size:20;not null;default:text"`
	IsRequired bool       `json:"is_required" gorm:"not null;default:false"`
	Options    StringList `json:"options" gorm:"type:jsonb"`
	SortOrder  int        `json:"sort_order" gorm:"not null;default:0"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionWorkTask scopes a question to a work task. A question with no rows
// here is visible under every work task.
type QuestionWorkTask struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	QuestionID string `json:"question_id" gorm:"size:32;not null;index:idx_question_work_tasks_question"`
	WorkTaskID string `json:"work_task_id" gorm:"size:32;not null"`
}

func (QuestionWorkTask) TableName() string {
	return "question_work_tasks"
}
