package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/dpi-lab/pkg/openapi"
)

func TestNewComponents(t *testing.T) {
	c := openapi.NewComponents()

	if _, ok := c.Schemas["Error"]; !ok {
		t.Error("missing schema Error")
	}

	for _, name := range []string{"BadRequest", "NotFound", "Conflict"} {
		if _, ok := c.Responses[name]; !ok {
			t.Errorf("missing response %s", name)
		}
	}
}

func TestComponents_AddSchemas(t *testing.T) {
	c := openapi.NewComponents()
	c.AddSchemas(map[string]*openapi.Schema{
		"ResolutionOptions": {Type: "object"},
	})

	if c.Schemas["ResolutionOptions"] == nil {
		t.Error("schema not added")
	}
	if c.Schemas["Error"] == nil {
		t.Error("existing schema removed")
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	spec.AddOperation("/documents", http.MethodGet, &openapi.Operation{Summary: "List"})
	spec.AddOperation("/documents", http.MethodPost, &openapi.Operation{Summary: "Upload"})
	spec.AddOperation("/documents", "PATCH", &openapi.Operation{Summary: "Ignored"})

	item := spec.Paths["/documents"]
	if item == nil {
		t.Fatal("path not added")
	}
	if item.Get.Summary != "List" || item.Post.Summary != "Upload" {
		t.Errorf("operations = %+v", item)
	}
	if item.Put != nil || item.Delete != nil {
		t.Error("unexpected operations registered")
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.SetDescription("desc")
	spec.AddServer("http://localhost:8080")
	spec.AddOperation("/healthz", http.MethodGet, &openapi.Operation{
		Responses: map[int]*openapi.Response{200: {Description: "OK"}},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", result["openapi"])
	}

	info := result["info"].(map[string]any)
	if info["description"] != "desc" {
		t.Errorf("info.description = %v, want desc", info["description"])
	}
}

func TestServeSpec(t *testing.T) {
	w := httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestParams(t *testing.T) {
	p := openapi.PathParam("documentId", "Document ID")
	if p.In != "path" || !p.Required || p.Schema.Format != "uuid" {
		t.Errorf("PathParam() = %+v", p)
	}

	q := openapi.QueryParam("selected", "string", "Selected page IDs", false)
	if q.In != "query" || q.Required || q.Schema.Type != "string" {
		t.Errorf("QueryParam() = %+v", q)
	}

	if ref := openapi.SchemaRef("Page"); ref.Ref != "#/components/schemas/Page" {
		t.Errorf("SchemaRef() = %q", ref.Ref)
	}
}
