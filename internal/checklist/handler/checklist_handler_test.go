package handler

import (
	"net/http"
	"testing"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/testutil"
)

func TestGetFormDefinition(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-100", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-100", "cl-100", "Safety", 1)
	testutil.SeedQuestion(t, db, "q-100", "cat-100", "All clear?", "yesno", true)

	w := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-100/form", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	checklist := data["checklist"].(map[string]interface{})
	if checklist["id"] != "cl-100" {
		t.Errorf("Expected checklist cl-100, got %v", checklist["id"])
	}
	questions := data["questions"].([]interface{})
	if len(questions) != 1 {
		t.Errorf("Expected 1 question, got %d", len(questions))
	}
}

func TestGetPlanDropsEmptyCategories(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-101", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-101", "cl-101", "Safety", 1)
	testutil.SeedCategory(t, db, "cat-102", "cl-101", "Housekeeping", 2)
	testutil.SeedQuestion(t, db, "q-101", "cat-101", "All clear?", "yesno", true)

	w := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-101/plan", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	plan := data["plan"].(map[string]interface{})
	if plan["total_steps"].(float64) != 2 {
		t.Errorf("Expected 2 steps (identification + Safety), got %v", plan["total_steps"])
	}
}

func TestGetPlanScopedByWorkTask(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-102", "Line QC", true, false, false)
	testutil.SeedWorkTask(t, db, "wt-100", "Assembly", false)
	testutil.SeedWorkTask(t, db, "wt-101", "Packing", false)
	testutil.SeedCategory(t, db, "cat-110", "cl-102", "Machine", 1)
	testutil.SeedQuestion(t, db, "q-110", "cat-110", "Torque checked?", "yesno", true)
	db.Create(&entity.QuestionWorkTask{ID: "qwt-1", QuestionID: "q-110", WorkTaskID: "wt-100"})

	// scoped question visible under its task
	w := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-102/plan?work_task_id=wt-100", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	plan := testutil.ParseResponse(w)["data"].(map[string]interface{})["plan"].(map[string]interface{})
	if plan["total_steps"].(float64) != 2 {
		t.Errorf("Expected 2 steps under wt-100, got %v", plan["total_steps"])
	}

	// hidden under the other task, category collapses
	w2 := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-102/plan?work_task_id=wt-101", nil, token)
	plan2 := testutil.ParseResponse(w2)["data"].(map[string]interface{})["plan"].(map[string]interface{})
	if plan2["total_steps"].(float64) != 1 {
		t.Errorf("Expected 1 step under wt-101, got %v", plan2["total_steps"])
	}

	// unknown task id rejected
	w3 := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-102/plan?work_task_id=nope", nil, token)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown task, got %d: %s", w3.Code, w3.Body.String())
	}
}

func TestGetPlanAutoSelectsSingleWorkTask(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-103", "Line QC", true, false, false)
	testutil.SeedWorkTask(t, db, "wt-200", "Assembly", false)

	w := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-103/plan", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["work_task_id"] != "wt-200" {
		t.Errorf("Expected auto-selected work task wt-200, got %v", data["work_task_id"])
	}
}

func TestValidateStepCollectsMissing(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-104", "Shift Handover", false, false, true)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-104/validate",
		map[string]interface{}{
			"step_index":    0,
			"operator_name": "",
			"responses":     map[string]interface{}{},
		}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	result := data["result"].(map[string]interface{})
	if result["ok"] != false {
		t.Errorf("Expected validation failure, got %v", result["ok"])
	}
	missing := result["missing"].([]interface{})
	if len(missing) != 2 || missing[0] != "operator name" || missing[1] != "shift" {
		t.Errorf("Unexpected missing fields: %v", missing)
	}
	if data["is_last_step"] != true {
		t.Errorf("Expected single-step plan to mark step 0 as last, got %v", data["is_last_step"])
	}
}

func TestValidateStorageFailureIsServerError(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-106", "Daily QC", false, false, false)

	if err := db.Migrator().DropTable(&entity.Category{}); err != nil {
		t.Fatalf("Failed to drop category table: %v", err)
	}

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-106/validate",
		map[string]interface{}{
			"step_index":    0,
			"operator_name": "Anna",
			"responses":     map[string]interface{}{},
		}, token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 for storage failure, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInvalidateCache(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-107", "Daily QC", false, false, false)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-107/cache/invalidate", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["invalidated"] != true {
		t.Errorf("Expected invalidated true, got %v", data["invalidated"])
	}
}

func TestValidateStepOutOfRange(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-105", "Daily QC", false, false, false)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-105/validate",
		map[string]interface{}{
			"step_index":    5,
			"operator_name": "Anna",
			"responses":     map[string]interface{}{},
		}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for out-of-range step, got %d: %s", w.Code, w.Body.String())
	}
}
