package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/dpi-lab/pkg/openapi"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/documents",
		Tags:   []string{"Documents"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "POST", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "Upload", Tags: []string{"Uploads"}}},
			{Method: "DELETE", Pattern: "/{id}", Handler: noop},
		},
		Children: []routes.Group{
			{
				Prefix: "/{documentId}/pages",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: noop, OpenAPI: &openapi.Operation{Summary: "List pages"}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{
			"Document": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	item := spec.Paths["/api/documents"]
	if item == nil {
		t.Fatal("path /api/documents not added")
	}

	if item.Get.Tags[0] != "Documents" {
		t.Errorf("GET tags = %v, want inherited [Documents]", item.Get.Tags)
	}
	if item.Post.Tags[0] != "Uploads" {
		t.Errorf("POST tags = %v, want explicit [Uploads]", item.Post.Tags)
	}

	if spec.Paths["/api/documents/{id}"] != nil {
		t.Error("route without OpenAPI should not be documented")
	}

	if spec.Paths["/api/documents/{documentId}/pages"] == nil {
		t.Error("child group path not added")
	}

	if spec.Components.Schemas["Document"] == nil {
		t.Error("group schema not added")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/documents",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("list")) },
				OpenAPI: &openapi.Operation{Summary: "List"},
			},
			{
				Method:  "GET",
				Pattern: "/{id}",
				Handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("find " + r.PathValue("id"))) },
				OpenAPI: &openapi.Operation{Summary: "Find"},
			},
		},
	}

	routes.Register(mux, "/api", spec, group)

	tests := []struct {
		path string
		want string
	}{
		{"/documents", "list"},
		{"/documents/123", "find 123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	if spec.Paths["/api/documents/{id}"] == nil {
		t.Error("spec path /api/documents/{id} not added")
	}
}
