package handler

import (
	"net/http"
	"testing"

	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/bouvin87/System-by-Sections/internal/checklist/service"
	"github.com/bouvin87/System-by-Sections/internal/checklist/testutil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupResponseTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	definitions := service.NewDefinitionService(repos, nil, zap.NewNop())
	submissions := service.NewSubmissionService(definitions, repos.Response, zap.NewNop())
	exports := service.NewExportService(definitions, repos.Response)

	checklistHandler := NewChecklistHandler(definitions, submissions)
	responseHandler := NewResponseHandler(submissions, exports, definitions)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/checklists/:id/form", checklistHandler.GetForm)
	api.GET("/checklists/:id/plan", checklistHandler.GetPlan)
	api.POST("/checklists/:id/validate", checklistHandler.Validate)
	api.POST("/checklists/:id/cache/invalidate", checklistHandler.InvalidateCache)
	api.POST("/checklists/:id/responses", responseHandler.Submit)
	api.GET("/checklists/:id/responses", responseHandler.List)
	api.GET("/responses/:id", responseHandler.Get)

	return db, router
}

func TestSubmitResponse(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-001", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-001", "cl-001", "Safety", 1)
	testutil.SeedQuestion(t, db, "q-001", "cat-001", "Are the machine guards in place?", "yesno", true)
	testutil.SeedQuestion(t, db, "q-002", "cat-001", "Comments", "text", false)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-001/responses",
		map[string]interface{}{
			"operator_name": "Anna",
			"responses": map[string]interface{}{
				"q-001": true,
			},
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["operator_name"] != "Anna" {
		t.Errorf("Expected operator Anna, got %v", data["operator_name"])
	}
	if data["is_completed"] != true {
		t.Errorf("Expected is_completed true, got %v", data["is_completed"])
	}
	answers := data["answers"].(map[string]interface{})
	if answers["q-001"] != true {
		t.Errorf("Expected q-001 answer true, got %v", answers["q-001"])
	}
}

func TestSubmitCollectsAllMissingFields(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-002", "Shift Handover", false, false, true)
	testutil.SeedCategory(t, db, "cat-010", "cl-002", "Machine state", 1)
	testutil.SeedQuestion(t, db, "q-010", "cat-010", "Oil level checked?", "checkbox", true)

	// whitespace-only operator name, no shift, checkbox not ticked
	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-002/responses",
		map[string]interface{}{
			"operator_name": "   ",
			"responses": map[string]interface{}{
				"q-010": false,
			},
		}, token)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	missing := data["missing"].([]interface{})
	if len(missing) != 3 {
		t.Fatalf("Expected 3 missing fields, got %v", missing)
	}
	if missing[0] != "operator name" || missing[1] != "shift" || missing[2] != "Oil level checked?" {
		t.Errorf("Unexpected missing fields order: %v", missing)
	}
}

func TestSubmitZeroIsValidNumberAnswer(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-003", "Scrap Count", false, false, false)
	testutil.SeedCategory(t, db, "cat-020", "cl-003", "Output", 1)
	testutil.SeedQuestion(t, db, "q-020", "cat-020", "Rejected units", "number", true)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-003/responses",
		map[string]interface{}{
			"operator_name": "Erik",
			"responses": map[string]interface{}{
				"q-020": 0,
			},
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 for zero answer, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitUnknownWorkTaskRejected(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-004", "Line QC", true, false, false)
	testutil.SeedWorkTask(t, db, "wt-001", "Assembly", false)

	badID := "wt-missing"
	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-004/responses",
		map[string]interface{}{
			"operator_name": "Anna",
			"work_task_id":  badID,
			"responses":     map[string]interface{}{},
		}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown work task, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitBadAnswerTypeRejected(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-007", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-050", "cl-007", "Safety", 1)
	testutil.SeedQuestion(t, db, "q-050", "cat-050", "Comments", "text", false)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-007/responses",
		map[string]interface{}{
			"operator_name": "Anna",
			"responses": map[string]interface{}{
				"q-050": 42,
			},
		}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for mistyped answer, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListResponses(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-005", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-030", "cl-005", "Safety", 1)
	testutil.SeedQuestion(t, db, "q-030", "cat-030", "All clear?", "yesno", true)

	for _, name := range []string{"Anna", "Erik"} {
		w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-005/responses",
			map[string]interface{}{
				"operator_name": name,
				"responses":     map[string]interface{}{"q-030": true},
			}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Seed submit failed: %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(r, "GET", "/api/v1/checklists/cl-005/responses", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 2 {
		t.Errorf("Expected total 2, got %v", pagination["total"])
	}
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
}

func TestGetResponse(t *testing.T) {
	db, r := setupResponseTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedChecklist(t, db, "cl-006", "Daily QC", false, false, false)
	testutil.SeedCategory(t, db, "cat-040", "cl-006", "Safety", 1)
	testutil.SeedQuestion(t, db, "q-040", "cat-040", "All clear?", "yesno", true)

	w := testutil.DoRequest(r, "POST", "/api/v1/checklists/cl-006/responses",
		map[string]interface{}{
			"operator_name": "Anna",
			"responses":     map[string]interface{}{"q-040": true},
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Seed submit failed: %d: %s", w.Code, w.Body.String())
	}
	created := testutil.ParseResponse(w)["data"].(map[string]interface{})
	id := created["id"].(string)

	w2 := testutil.DoRequest(r, "GET", "/api/v1/responses/"+id, nil, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w2.Code, w2.Body.String())
	}

	w3 := testutil.DoRequest(r, "GET", "/api/v1/responses/does-not-exist", nil, token)
	if w3.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w3.Code, w3.Body.String())
	}
}
