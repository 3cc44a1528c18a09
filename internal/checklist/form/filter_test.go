package form

import (
	"testing"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
)

func question(id, categoryID, text string) entity.Question {
	return entity.Question{ID: id, CategoryID: categoryID, Text: text, Type: entity.QuestionTypeText}
}

func link(questionID, workTaskID string) entity.QuestionWorkTask {
	return entity.QuestionWorkTask{ID: questionID + "-" + workTaskID, QuestionID: questionID, WorkTaskID: workTaskID}
}

// TestFilterUniversalQuestions verifies questions without link rows are
// visible under every work task.
func TestFilterUniversalQuestions(t *testing.T) {
	questions := []entity.Question{
		question("q1", "cat1", "Universal one"),
		question("q2", "cat1", "Universal two"),
	}

	for _, taskID := range []string{"task-a", "task-b", "task-unknown"} {
		got := FilterQuestions(questions, nil, taskID, true)
		if len(got) != 2 {
			t.Fatalf("task %s: expected 2 questions, got %d", taskID, len(got))
		}
	}
}

// TestFilterScopedQuestions verifies linked questions show only under their
// listed work tasks.
func TestFilterScopedQuestions(t *testing.T) {
	questions := []entity.Question{
		question("q1", "cat1", "Scoped to a"),
		question("q2", "cat1", "Scoped to a and b"),
		question("q3", "cat1", "Universal"),
	}
	links := []entity.QuestionWorkTask{
		link("q1", "task-a"),
		link("q2", "task-a"),
		link("q2", "task-b"),
	}

	got := FilterQuestions(questions, links, "task-a", true)
	if len(got) != 3 {
		t.Fatalf("task-a: expected 3 questions, got %d", len(got))
	}

	got = FilterQuestions(questions, links, "task-b", true)
	if len(got) != 2 {
		t.Fatalf("task-b: expected 2 questions, got %d", len(got))
	}
	if got[0].ID != "q2" || got[1].ID != "q3" {
		t.Fatalf("task-b: expected q2,q3 in order, got %s,%s", got[0].ID, got[1].ID)
	}

	got = FilterQuestions(questions, links, "task-c", true)
	if len(got) != 1 || got[0].ID != "q3" {
		t.Fatalf("task-c: expected only universal q3, got %d questions", len(got))
	}
}

// TestFilterPassthrough verifies the filter is a no-op when work tasks are
// not in play.
func TestFilterPassthrough(t *testing.T) {
	questions := []entity.Question{
		question("q1", "cat1", "One"),
		question("q2", "cat1", "Two"),
	}
	links := []entity.QuestionWorkTask{link("q1", "task-a")}

	// checklist does not use work tasks
	got := FilterQuestions(questions, links, "task-b", false)
	if len(got) != 2 {
		t.Fatalf("expected passthrough of 2 questions, got %d", len(got))
	}

	// no task selected yet
	got = FilterQuestions(questions, links, "", true)
	if len(got) != 2 {
		t.Fatalf("expected passthrough of 2 questions with no selection, got %d", len(got))
	}

	// order must be preserved
	if got[0].ID != "q1" || got[1].ID != "q2" {
		t.Fatalf("expected original order q1,q2, got %s,%s", got[0].ID, got[1].ID)
	}
}

// TestFilterDoesNotMutateInput verifies the filter returns a fresh slice.
func TestFilterDoesNotMutateInput(t *testing.T) {
	questions := []entity.Question{question("q1", "cat1", "One")}
	got := FilterQuestions(questions, nil, "", false)
	got[0].Text = "mutated"
	if questions[0].Text != "One" {
		t.Fatal("filter must not alias its input slice")
	}
}
