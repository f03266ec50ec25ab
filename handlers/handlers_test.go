package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/storage"
)

func newTestRouter() (*gin.Engine, storage.ProjectStore) {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemoryStore()

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck())
		api.GET("/projects", ListProjects(store))
		api.POST("/projects", CreateProject(store))
		api.GET("/projects/:project_id", GetProject(store))
		api.DELETE("/projects/:project_id", DeleteProject(store))
		api.GET("/projects/:project_id/floors", GetFloorPlans(store))
		api.POST("/projects/:project_id/floors", AddFloorPlan(store))
		api.POST("/projects/:project_id/floors/import", ImportFloorPlan(store))
		api.GET("/projects/:project_id/floors/:floor_id/rooms", GetRooms(store))
		api.POST("/projects/:project_id/floors/:floor_id/rooms", AddRoom(store))
		api.POST("/projects/:project_id/floors/:floor_id/walls", AddWall(store))
		api.POST("/projects/:project_id/calculate", CalculateProjectMaterials(store))
		api.POST("/projects/:project_id/floors/:floor_id/calculate", CalculateFloorMaterials(store))
		api.GET("/projects/:project_id/floors/:floor_id/render.svg", RenderFloorPlanSVG(store))
		api.GET("/projects/:project_id/floors/:floor_id/render.html", RenderFloorPlanHTML(store))
		api.GET("/projects/:project_id/export_csv", ExportEstimateCSV(store))
		api.GET("/projects/:project_id/export_xlsx", ExportEstimateXLSX(store))
		api.GET("/projects/:project_id/estimate_pdf", GenerateEstimatePDF(store))
		api.GET("/projects/:project_id/qr", GenerateProjectQRCode(store))
		api.GET("/materials", ListMaterials())
		api.GET("/materials/:category", ListMaterialsByCategory())
		api.GET("/room-types", ListRoomTypes())
		api.GET("/floorplans/example", ExampleFloorPlanDefinition())
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\n%s", err, w.Body.String())
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"healthy"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateAndGetProject(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects",
		models.CreateProjectRequest{Name: "Smith Residence", Description: "Two-story"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	resp := decodeEnvelope(t, w)
	if !resp.Success {
		t.Fatalf("create failed: %s", resp.Error)
	}
	summary := resp.Data.(map[string]interface{})
	id := summary["id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+id, nil)
	resp = decodeEnvelope(t, w)
	if !resp.Success {
		t.Fatalf("get failed: %s", resp.Error)
	}

	// Missing projects come back as an error envelope, not a 404.
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/nope", nil)
	if w.Code != http.StatusOK {
		t.Errorf("missing get status = %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Success || resp.Error != "Project not found" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects", map[string]string{"description": "no name"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAddFloorPlanNotFoundIs404(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/nope/floors",
		models.CreateFloorPlanRequest{Name: "Main Floor"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func createProjectWithFloor(t *testing.T, r *gin.Engine) (projectID, floorID string) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects",
		models.CreateProjectRequest{Name: "Test House"})
	resp := decodeEnvelope(t, w)
	projectID = resp.Data.(map[string]interface{})["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/floors",
		models.CreateFloorPlanRequest{Name: "Main Floor"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add floor status = %d: %s", w.Code, w.Body.String())
	}
	resp = decodeEnvelope(t, w)
	floorID = resp.Data.(map[string]interface{})["id"].(string)
	return projectID, floorID
}

func TestAddRoomAndWallThenCalculate(t *testing.T) {
	r, _ := newTestRouter()
	projectID, floorID := createProjectWithFloor(t, r)

	base := fmt.Sprintf("/api/v1/projects/%s/floors/%s", projectID, floorID)

	w := doJSON(t, r, http.MethodPost, base+"/rooms", models.CreateRoomRequest{
		Name: "Living Room", RoomType: models.LivingRoom,
		LengthFeet: 18, WidthFeet: 14,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add room status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, base+"/walls", models.CreateWallRequest{
		WallType: models.ExteriorLoadBearing,
		EndX:     18,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add wall status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/calculate",
		models.CalculateRequest{})
	resp := decodeEnvelope(t, w)
	if !resp.Success {
		t.Fatalf("calculate failed: %s", resp.Error)
	}

	estimate := resp.Data.(map[string]interface{})
	categories := estimate["categories"].([]interface{})
	if len(categories) != 6 {
		t.Errorf("categories = %d, want 6", len(categories))
	}
	if estimate["total_cost"].(float64) <= 0 {
		t.Errorf("total_cost = %v", estimate["total_cost"])
	}
	if estimate["total_sqft"].(float64) != 252 {
		t.Errorf("total_sqft = %v, want 252", estimate["total_sqft"])
	}

	// Floor-level calculation mirrors the project one.
	w = doJSON(t, r, http.MethodPost, base+"/calculate", models.CalculateRequest{})
	resp = decodeEnvelope(t, w)
	if !resp.Success {
		t.Fatalf("floor calculate failed: %s", resp.Error)
	}
}

func TestCalculateHonorsQualityTier(t *testing.T) {
	r, _ := newTestRouter()
	projectID, floorID := createProjectWithFloor(t, r)
	base := fmt.Sprintf("/api/v1/projects/%s/floors/%s", projectID, floorID)
	doJSON(t, r, http.MethodPost, base+"/rooms", models.CreateRoomRequest{
		Name: "Bedroom", RoomType: models.Bedroom,
		LengthFeet: 12, WidthFeet: 10,
	})

	tier := models.TierLuxury
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/calculate",
		models.CalculateRequest{QualityTier: &tier})
	resp := decodeEnvelope(t, w)
	estimate := resp.Data.(map[string]interface{})
	if estimate["quality_tier"].(string) != "luxury" {
		t.Errorf("quality_tier = %v", estimate["quality_tier"])
	}

	luxuryCost := estimate["total_cost"].(float64)
	w = doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/calculate",
		models.CalculateRequest{})
	standardCost := decodeEnvelope(t, w).Data.(map[string]interface{})["total_cost"].(float64)
	if luxuryCost <= standardCost {
		t.Errorf("luxury %v should cost more than standard %v", luxuryCost, standardCost)
	}
}

func TestCalculateRejectsZeroStudSpacing(t *testing.T) {
	r, _ := newTestRouter()
	projectID, _ := createProjectWithFloor(t, r)

	spacing := 0
	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/calculate",
		models.CalculateRequest{StudSpacing: &spacing})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestImportFloorPlan(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects",
		models.CreateProjectRequest{Name: "Import Test"})
	projectID := decodeEnvelope(t, w).Data.(map[string]interface{})["id"].(string)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+projectID+"/floors/import",
		strings.NewReader(models.ExampleFloorPlanJSON()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("import status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	data := resp.Data.(map[string]interface{})
	if warnings := data["warnings"].([]interface{}); len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	plan := data["floor_plan"].(map[string]interface{})
	if rooms := plan["rooms"].([]interface{}); len(rooms) != 3 {
		t.Errorf("rooms = %d", len(rooms))
	}
}

func TestRoomTypesList(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/room-types", nil)

	resp := decodeEnvelope(t, w)
	types := resp.Data.([]interface{})
	if len(types) != 37 {
		t.Errorf("room types = %d, want 37", len(types))
	}
	for _, entry := range types {
		id := entry.(map[string]interface{})["id"].(string)
		if id == "basement" || id == "attic" || id == "mechanical" || id == "other" {
			t.Errorf("internal room type %q exposed", id)
		}
	}
}

func TestMaterialEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/materials", nil)
	resp := decodeEnvelope(t, w)
	if all := resp.Data.([]interface{}); len(all) < 50 {
		t.Errorf("materials = %d", len(all))
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/materials/lumber", nil)
	resp = decodeEnvelope(t, w)
	if lumber := resp.Data.([]interface{}); len(lumber) != 9 {
		t.Errorf("lumber = %d, want 9", len(lumber))
	}

	// Both spellings of sheet goods work.
	w = doJSON(t, r, http.MethodGet, "/api/v1/materials/sheetgoods", nil)
	if resp := decodeEnvelope(t, w); !resp.Success {
		t.Errorf("sheetgoods: %s", resp.Error)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/materials/plasma", nil)
	if resp := decodeEnvelope(t, w); resp.Success || resp.Error != "Unknown category" {
		t.Errorf("unknown category resp = %+v", resp)
	}
}

func TestRenderEndpoints(t *testing.T) {
	r, _ := newTestRouter()
	projectID, floorID := createProjectWithFloor(t, r)
	base := fmt.Sprintf("/api/v1/projects/%s/floors/%s", projectID, floorID)
	doJSON(t, r, http.MethodPost, base+"/rooms", models.CreateRoomRequest{
		Name: "Kitchen", RoomType: models.Kitchen,
		LengthFeet: 14, WidthFeet: 12,
	})

	w := doJSON(t, r, http.MethodGet, base+"/render.svg?scheme=blueprint", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<svg") {
		t.Errorf("svg render: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "#0f0f23") {
		t.Error("blueprint scheme not applied")
	}

	w = doJSON(t, r, http.MethodGet, base+"/render.html", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<!DOCTYPE html>") {
		t.Errorf("html render: %d", w.Code)
	}
}

func TestExportEndpoints(t *testing.T) {
	r, _ := newTestRouter()
	projectID, floorID := createProjectWithFloor(t, r)
	base := fmt.Sprintf("/api/v1/projects/%s/floors/%s", projectID, floorID)
	doJSON(t, r, http.MethodPost, base+"/rooms", models.CreateRoomRequest{
		Name: "Office", RoomType: models.Office,
		LengthFeet: 10, WidthFeet: 10,
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID+"/export_csv", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("csv status = %d", w.Code)
	}
	firstLine := strings.SplitN(w.Body.String(), "\n", 2)[0]
	if !strings.HasPrefix(firstLine, "Category,Material,Unit") {
		t.Errorf("csv header = %q", firstLine)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID+"/export_xlsx", nil)
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Errorf("xlsx status = %d, len = %d", w.Code, w.Body.Len())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID+"/estimate_pdf", nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Errorf("pdf status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID+"/qr", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("qr status = %d, type = %q", w.Code, w.Header().Get("Content-Type"))
	}

	// Exports 404 on unknown projects.
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/nope/export_csv", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing export status = %d", w.Code)
	}
}

func TestDeleteProject(t *testing.T) {
	r, _ := newTestRouter()
	projectID, _ := createProjectWithFloor(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+projectID, nil)
	if resp := decodeEnvelope(t, w); !resp.Success {
		t.Fatalf("delete failed: %s", resp.Error)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/projects/"+projectID, nil)
	if resp := decodeEnvelope(t, w); resp.Success {
		t.Error("double delete succeeded")
	}
}

func TestExampleFloorPlanEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/floorplans/example", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var def models.FloorPlanDefinition
	if err := json.Unmarshal(w.Body.Bytes(), &def); err != nil {
		t.Fatalf("example is not a valid definition: %v", err)
	}
	if len(def.Rooms) != 3 {
		t.Errorf("rooms = %d", len(def.Rooms))
	}
}
