package form

import (
	"fmt"
	"strconv"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
)

// AnswerKind tags the value shape stored for a question.
type AnswerKind string

const (
	AnswerKindText   AnswerKind = "text"
	AnswerKindNumber AnswerKind = "number"
	AnswerKindBool   AnswerKind = "bool"
	AnswerKindChoice AnswerKind = "choice"
	AnswerKindFile   AnswerKind = "file"
)

// Answer is a validated response value. The raw value keeps the exact shape
// the input widget produced (string, float64 or bool) so the submission
// payload passes it through untransformed.
type Answer struct {
	Kind AnswerKind
	raw  interface{}
}

// Value returns the raw answer value.
func (a Answer) Value() interface{} {
	return a.raw
}

// ParseAnswer validates value against the question's type and returns the
// tagged answer. Type mismatches are write-time errors, not validation
// "missing" results.
func ParseAnswer(q entity.Question, value interface{}) (Answer, error) {
	switch q.Type {
	case entity.QuestionTypeText, entity.QuestionTypeDate:
		s, ok := value.(string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q expects a text value, got %T", q.Text, value)
		}
		return Answer{Kind: AnswerKindText, raw: s}, nil

	case entity.QuestionTypeFile:
		s, ok := value.(string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q expects a file name, got %T", q.Text, value)
		}
		return Answer{Kind: AnswerKindFile, raw: s}, nil

	case entity.QuestionTypeChoice:
		s, ok := value.(string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q expects a choice value, got %T", q.Text, value)
		}
		if s != "" && !containsOption(q.Options, s) {
			return Answer{}, fmt.Errorf("question %q has no option %q", q.Text, s)
		}
		return Answer{Kind: AnswerKindChoice, raw: s}, nil

	case entity.QuestionTypeNumber:
		// number inputs may deliver either a JSON number or the raw field
		// string; both shapes are stored as received
		switch v := value.(type) {
		case float64:
			return Answer{Kind: AnswerKindNumber, raw: v}, nil
		case int:
			return Answer{Kind: AnswerKindNumber, raw: float64(v)}, nil
		case string:
			if v != "" {
				if _, err := strconv.ParseFloat(v, 64); err != nil {
					return Answer{}, fmt.Errorf("question %q expects a numeric value, got %q", q.Text, v)
				}
			}
			return Answer{Kind: AnswerKindNumber, raw: v}, nil
		default:
			return Answer{}, fmt.Errorf("question %q expects a numeric value, got %T", q.Text, value)
		}

	case entity.QuestionTypeStar, entity.QuestionTypeMood:
		n, ok := toFloat(value)
		if !ok {
			return Answer{}, fmt.Errorf("question %q expects a rating value, got %T", q.Text, value)
		}
		if n < 0 || n > 5 {
			return Answer{}, fmt.Errorf("question %q rating %v out of range", q.Text, n)
		}
		return Answer{Kind: AnswerKindNumber, raw: n}, nil

	case entity.QuestionTypeYesNo, entity.QuestionTypeCheckbox:
		b, ok := value.(bool)
		if !ok {
			return Answer{}, fmt.Errorf("question %q expects a boolean value, got %T", q.Text, value)
		}
		return Answer{Kind: AnswerKindBool, raw: b}, nil

	default:
		return Answer{}, fmt.Errorf("unknown question type %q", q.Type)
	}
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
