package v1_test

import (
	"net/http"
	"testing"

	"github.com/solarplanner-api/testutil"
)

func TestTerraceRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	vertices := []map[string]float64{
		{"x": 0, "y": 0},
		{"x": 585, "y": 0},
		{"x": 585, "y": 388},
		{"x": 0, "y": 388},
	}
	w := testutil.DoRequest(r, http.MethodPut, "/api/v1/projects/"+projectID+"/terrace", map[string]interface{}{
		"vertices":  vertices,
		"width_cm":  585,
		"height_cm": 388,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("terrace update failed: %d: %s", w.Code, w.Body.String())
	}
	if testutil.ParseResponse(w)["status"] != "ok" {
		t.Fatalf("expected ok ack, got %s", w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/terrace", nil, token)
	terrace := testutil.ParseResponse(w)
	if terrace["width_cm"].(float64) != 585 || terrace["height_cm"].(float64) != 388 {
		t.Fatalf("dimensions not persisted: %v", terrace)
	}
	got := terrace["vertices"].([]interface{})
	if len(got) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(got))
	}
	first := got[1].(map[string]interface{})
	if first["x"].(float64) != 585 || first["y"].(float64) != 0 {
		t.Fatalf("vertices not preserved: %v", got)
	}
}

func TestTerracePartialUpdateLeavesOtherFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	w := testutil.DoRequest(r, http.MethodPut, "/api/v1/projects/"+projectID+"/terrace",
		map[string]interface{}{"height_cm": 50}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("first update failed: %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/projects/"+projectID+"/terrace",
		map[string]interface{}{"width_cm": 100}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("second update failed: %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/terrace", nil, token)
	terrace := testutil.ParseResponse(w)
	if terrace["width_cm"].(float64) != 100 || terrace["height_cm"].(float64) != 50 {
		t.Fatalf("partial updates must not clobber other fields: %v", terrace)
	}
}

func TestTerraceUpdateRejectsUncoercibleValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	// A bad width alongside a good name: nothing may be applied
	w := testutil.DoRawRequest(r, http.MethodPut, "/api/v1/projects/"+projectID+"/terrace",
		`{"name": "Azotea", "width_cm": "not-a-number"}`, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for uncoercible value, got %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/terrace", nil, token)
	terrace := testutil.ParseResponse(w)
	if terrace["name"] == "Azotea" {
		t.Fatal("failed update must not apply any field")
	}
}

func TestStructurePartialUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	beams := []map[string]interface{}{
		{"x1": 0, "y1": 0, "x2": 585, "y2": 0, "profile": "IPN-100"},
		{"x1": 0, "y1": 100, "x2": 585, "y2": 100, "profile": "IPN-100"},
	}
	w := testutil.DoRequest(r, http.MethodPut, "/api/v1/projects/"+projectID+"/structure", map[string]interface{}{
		"beams":            beams,
		"beam_profile":     "IPN-100",
		"show_post_labels": false,
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("structure update failed: %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/structure", nil, token)
	structure := testutil.ParseResponse(w)
	if structure["beam_profile"] != "IPN-100" {
		t.Fatalf("beam_profile not persisted: %v", structure)
	}
	if structure["show_post_labels"].(bool) != false {
		t.Fatal("show_post_labels false must be persisted")
	}
	// Untouched fields keep their defaults
	if structure["material"] != "Acero S275" {
		t.Fatalf("material must be untouched: %v", structure["material"])
	}
	if structure["inclination_end_beam"].(float64) != -1 {
		t.Fatalf("inclination_end_beam must keep its default: %v", structure["inclination_end_beam"])
	}
	if len(structure["beams"].([]interface{})) != 2 {
		t.Fatalf("beams not persisted: %v", structure["beams"])
	}
}

func TestAddPanelAppliesDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/projects/"+projectID+"/panels", map[string]interface{}{
		"model_name": "X",
		"width_cm":   100,
		"height_cm":  170,
		"power_w":    450,
		"quantity":   10,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/panels", nil, token)
	panels := testutil.ParseResponse(w)["panels"].([]interface{})
	if len(panels) != 1 {
		t.Fatalf("expected 1 panel, got %d", len(panels))
	}

	p := panels[0].(map[string]interface{})
	if p["model_name"] != "X" || p["width_cm"].(float64) != 100 ||
		p["height_cm"].(float64) != 170 || p["power_w"].(float64) != 450 ||
		p["quantity"].(float64) != 10 {
		t.Fatalf("explicit fields not persisted: %v", p)
	}
	// Omitted fields fall back to the generic panel defaults
	if p["weight_kg"].(float64) != 21.0 {
		t.Fatalf("expected default weight 21.0, got %v", p["weight_kg"])
	}
	if p["inclination_deg"].(float64) != 20.0 {
		t.Fatalf("expected default inclination 20.0, got %v", p["inclination_deg"])
	}
}

func TestAddPanelAllDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/projects/"+projectID+"/panels", map[string]interface{}{}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/panels", nil, token)
	p := testutil.ParseResponse(w)["panels"].([]interface{})[0].(map[string]interface{})
	if p["model_name"] != "Panel genérico 400W" {
		t.Fatalf("expected default model name, got %v", p["model_name"])
	}
	if p["width_cm"].(float64) != 99.2 || p["height_cm"].(float64) != 165.6 {
		t.Fatalf("expected default dimensions 99.2x165.6, got %v x %v", p["width_cm"], p["height_cm"])
	}
	if p["power_w"].(float64) != 400 || p["quantity"].(float64) != 1 {
		t.Fatalf("expected 400W x1, got %v W x%v", p["power_w"], p["quantity"])
	}
}

func TestLayoutEmptySentinel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/layout", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("no-layout-yet must not be an error, got %d", w.Code)
	}

	layout := testutil.ParseResponse(w)
	if len(layout["panel_positions"].([]interface{})) != 0 {
		t.Fatalf("sentinel must have empty positions: %v", layout)
	}
	if len(layout["canvas_data"].(map[string]interface{})) != 0 {
		t.Fatalf("sentinel must have empty canvas data: %v", layout)
	}
	if _, hasID := layout["id"]; hasID {
		t.Fatal("sentinel must not carry an id")
	}
}

func TestLayoutSaveIsAppendOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	token := testutil.RegisterAndLogin(t, r, "ana", "ana@example.com", "secret123")
	projectID := testutil.CreateProject(t, r, token, "Test")

	save := func(name string, positions []map[string]interface{}) string {
		w := testutil.DoRequest(r, http.MethodPost, "/api/v1/projects/"+projectID+"/layout", map[string]interface{}{
			"name":            name,
			"panel_positions": positions,
			"canvas_data":     map[string]interface{}{"zoom": 1.5},
			"metadata_info":   map[string]interface{}{"total_power_w": 4000},
		}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("layout save failed: %d: %s", w.Code, w.Body.String())
		}
		return testutil.ParseResponse(w)["id"].(string)
	}

	first := save("Opción A", []map[string]interface{}{{"x": 0, "y": 0, "rotation": 0}})
	second := save("Opción B", []map[string]interface{}{{"x": 10, "y": 20, "rotation": 90}})

	if first == second {
		t.Fatal("each save must create a distinct layout row")
	}

	var count int64
	db.Raw("SELECT count(*) FROM layouts").Scan(&count)
	if count != 2 {
		t.Fatalf("expected 2 layout rows, got %d", count)
	}

	// GET returns the latest
	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/projects/"+projectID+"/layout", nil, token)
	layout := testutil.ParseResponse(w)
	if layout["id"] != second {
		t.Fatalf("expected latest layout %s, got %v", second, layout["id"])
	}
	if layout["name"] != "Opción B" {
		t.Fatalf("expected latest name, got %v", layout["name"])
	}
	positions := layout["panel_positions"].([]interface{})
	if len(positions) != 1 || positions[0].(map[string]interface{})["rotation"].(float64) != 90 {
		t.Fatalf("latest positions not returned: %v", positions)
	}
}
