package form

import (
	"testing"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
)

// TestSessionStationCleared verifies the station invariant: a station id
// survives only while its task stays selected and requires stations.
func TestSessionStationCleared(t *testing.T) {
	stationTask := entity.WorkTask{ID: "task-1", Name: "Assembly", HasStations: true}
	plainTask := entity.WorkTask{ID: "task-2", Name: "Inspection", HasStations: false}

	sess := NewSession("cl1")
	sess.SelectWorkTask(&stationTask)
	sess.SelectWorkStation("station-9")
	if sess.WorkStationID != "station-9" {
		t.Fatalf("expected station-9 selected, got %q", sess.WorkStationID)
	}

	// switching task clears the station
	sess.SelectWorkTask(&plainTask)
	if sess.WorkStationID != "" {
		t.Fatalf("expected station cleared after task switch, got %q", sess.WorkStationID)
	}

	// a task without stations refuses station selection
	sess.SelectWorkStation("station-9")
	if sess.WorkStationID != "" {
		t.Fatalf("expected station selection ignored, got %q", sess.WorkStationID)
	}

	// clearing the task clears the station too
	sess.SelectWorkTask(&stationTask)
	sess.SelectWorkStation("station-9")
	sess.SelectWorkTask(nil)
	if sess.WorkTaskID != "" || sess.WorkStationID != "" {
		t.Fatalf("expected task and station cleared, got %q/%q", sess.WorkTaskID, sess.WorkStationID)
	}
}

// TestSessionAutoSelect verifies the single-candidate auto-selection rule.
func TestSessionAutoSelect(t *testing.T) {
	sess := NewSession("cl1")

	if sess.AutoSelectWorkTask(nil) {
		t.Fatal("no candidates must not auto-select")
	}
	two := []entity.WorkTask{{ID: "task-1"}, {ID: "task-2"}}
	if sess.AutoSelectWorkTask(two) {
		t.Fatal("two candidates must not auto-select")
	}
	one := []entity.WorkTask{{ID: "task-1", Name: "Assembly"}}
	if !sess.AutoSelectWorkTask(one) {
		t.Fatal("exactly one candidate must auto-select")
	}
	if sess.WorkTaskID != "task-1" {
		t.Fatalf("expected task-1 selected, got %q", sess.WorkTaskID)
	}
}

// TestSessionAnswerTyping verifies write-time answer validation.
func TestSessionAnswerTyping(t *testing.T) {
	sess := NewSession("cl1")

	textQ := entity.Question{ID: "q1", Text: "Comment", Type: entity.QuestionTypeText}
	if err := sess.SetAnswer(textQ, 42); err == nil {
		t.Fatal("expected error storing a number for a text question")
	}
	if err := sess.SetAnswer(textQ, "fine"); err != nil {
		t.Fatalf("SetAnswer text: %v", err)
	}

	choiceQ := entity.Question{ID: "q2", Text: "Grade", Type: entity.QuestionTypeChoice, Options: entity.StringList{"A", "B"}}
	if err := sess.SetAnswer(choiceQ, "C"); err == nil {
		t.Fatal("expected error for a value outside the options")
	}
	if err := sess.SetAnswer(choiceQ, "B"); err != nil {
		t.Fatalf("SetAnswer choice: %v", err)
	}

	ratingQ := entity.Question{ID: "q3", Text: "Mood", Type: entity.QuestionTypeMood}
	if err := sess.SetAnswer(ratingQ, float64(9)); err == nil {
		t.Fatal("expected error for out-of-range rating")
	}
	if err := sess.SetAnswer(ratingQ, float64(4)); err != nil {
		t.Fatalf("SetAnswer rating: %v", err)
	}

	numberQ := entity.Question{ID: "q4", Text: "Count", Type: entity.QuestionTypeNumber}
	if err := sess.SetAnswer(numberQ, "12.5"); err != nil {
		t.Fatalf("numeric string must be accepted: %v", err)
	}
	if err := sess.SetAnswer(numberQ, "not a number"); err == nil {
		t.Fatal("expected error for a non-numeric string")
	}

	// nil clears a stored answer
	if err := sess.SetAnswer(textQ, nil); err != nil {
		t.Fatalf("SetAnswer nil: %v", err)
	}
	if _, ok := sess.Answer("q1"); ok {
		t.Fatal("expected q1 cleared")
	}
}

// TestSessionReset verifies a reset leaves a fresh session bound to the same
// checklist.
func TestSessionReset(t *testing.T) {
	task := entity.WorkTask{ID: "task-1", HasStations: true}
	sess := NewSession("cl1")
	sess.SetOperatorName("Anna")
	sess.SelectWorkTask(&task)
	sess.SelectWorkStation("station-1")
	sess.SelectShift("shift-1")
	sess.SetAnswer(entity.Question{ID: "q1", Type: entity.QuestionTypeText}, "x")

	sess.Reset()

	if sess.ChecklistID != "cl1" {
		t.Fatalf("expected checklist binding kept, got %q", sess.ChecklistID)
	}
	if sess.OperatorName != "" || sess.WorkTaskID != "" || sess.WorkStationID != "" || sess.ShiftID != "" {
		t.Fatal("expected identification fields cleared")
	}
	if len(sess.Answers()) != 0 {
		t.Fatal("expected answers cleared")
	}
}

// TestSessionAnswersCopy verifies the response store is not aliased out.
func TestSessionAnswersCopy(t *testing.T) {
	sess := NewSession("cl1")
	sess.SetAnswer(entity.Question{ID: "q1", Type: entity.QuestionTypeText}, "x")

	answers := sess.Answers()
	answers["q1"] = "mutated"

	if v, _ := sess.Answer("q1"); v != "x" {
		t.Fatalf("expected stored answer unchanged, got %v", v)
	}
}
