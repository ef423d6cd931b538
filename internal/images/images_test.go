package images_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/dpi-lab/internal/images"
	"github.com/JaimeStill/dpi-lab/internal/pages"
	"github.com/JaimeStill/dpi-lab/internal/resolution"
	"github.com/JaimeStill/dpi-lab/pkg/openapi"
	"github.com/JaimeStill/dpi-lab/pkg/routes"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var (
	doc = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	p1  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	p2  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	p3  = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

func sequence() []pages.Page {
	return []pages.Page{
		{ID: p1, DocumentID: doc, PageNumber: 1, DPI: resolution.Isotropic(300)},
		{ID: p2, DocumentID: doc, PageNumber: 2, DPI: resolution.Isotropic(600)},
		{ID: p3, DocumentID: doc, PageNumber: 3, DPI: resolution.DPI{Horizontal: 300, Vertical: 400}},
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{images.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("find: %w", images.ErrNotFound), http.StatusNotFound},
		{images.ErrDocumentNotFound, http.StatusNotFound},
		{images.ErrDuplicate, http.StatusConflict},
		{images.ErrNotRenderable, http.StatusBadRequest},
		{images.ErrPageNotInDocument, http.StatusBadRequest},
		{images.ErrInvalidFormat, http.StatusBadRequest},
		{fmt.Errorf("page 2: %w", images.ErrRenderDPI), http.StatusBadRequest},
		{images.ErrRenderFailed, http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := images.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    document.ImageFormat
		wantErr bool
	}{
		{"", document.PNG, false},
		{"  ", document.PNG, false},
		{"png", document.PNG, false},
		{"jpg", document.JPEG, false},
		{"gif", "", true},
		{"tiff", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := images.ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, images.ErrInvalidFormat) {
					t.Errorf("ParseFormat() error = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormat_MatchesDocumentContext(t *testing.T) {
	for _, input := range []string{"png", "jpg"} {
		want, err := document.ParseImageFormat(input)
		if err != nil {
			t.Fatalf("document.ParseImageFormat(%q) error = %v", input, err)
		}

		got, err := images.ParseFormat(input)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", input, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, document-context gives %q", input, got, want)
		}
	}
}

func TestCheckRenderDPI(t *testing.T) {
	tests := []struct {
		name    string
		dpi     resolution.DPI
		limit   int
		wantErr bool
	}{
		{"below limit", resolution.Isotropic(300), 1200, false},
		{"at limit", resolution.Isotropic(1200), 1200, false},
		{"above limit", resolution.Isotropic(1201), 1200, true},
		{"vertical above limit", resolution.DPI{Horizontal: 300, Vertical: 800}, 600, true},
		{"lowered limit", resolution.Isotropic(600), 400, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := images.CheckRenderDPI(tt.dpi, tt.limit)
			if tt.wantErr != errors.Is(err, images.ErrRenderDPI) {
				t.Errorf("CheckRenderDPI() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStorageKey(t *testing.T) {
	tests := []struct {
		dpi    resolution.DPI
		format document.ImageFormat
		want   string
	}{
		{resolution.Isotropic(300), document.PNG, "images/" + doc.String() + "/" + p1.String() + "/300.png"},
		{resolution.DPI{Horizontal: 300, Vertical: 600}, document.JPEG, "images/" + doc.String() + "/" + p1.String() + "/300x600.jpg"},
	}

	for _, tt := range tests {
		if got := images.StorageKey(doc, p1, tt.dpi, tt.format); got != tt.want {
			t.Errorf("StorageKey(%s, %s) = %q, want %q", tt.dpi, tt.format, got, tt.want)
		}
	}
}

func TestSelectPages(t *testing.T) {
	seq := sequence()

	all, err := images.SelectPages(seq, nil)
	if err != nil {
		t.Fatalf("SelectPages(nil) error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("SelectPages(nil) = %d pages, want 3", len(all))
	}

	got, err := images.SelectPages(seq, []uuid.UUID{p3, p1, p3})
	if err != nil {
		t.Fatalf("SelectPages() error = %v", err)
	}
	if diff := cmp.Diff([]uuid.UUID{p1, p3}, pages.IDs(got)); diff != "" {
		t.Errorf("SelectPages() mismatch (-want +got):\n%s", diff)
	}

	if _, err := images.SelectPages(seq, []uuid.UUID{p1, uuid.New()}); !errors.Is(err, images.ErrPageNotInDocument) {
		t.Errorf("SelectPages() foreign page error = %v, want ErrPageNotInDocument", err)
	}
}

func TestMarkStale(t *testing.T) {
	imgs := []images.Image{
		{PageID: p1, DPI: resolution.Isotropic(300)},
		{PageID: p2, DPI: resolution.Isotropic(300)},
		{PageID: p3, DPI: resolution.Isotropic(300)},
		{PageID: uuid.New(), DPI: resolution.Isotropic(300)},
	}

	images.MarkStale(imgs, sequence())

	got := make([]bool, len(imgs))
	for i, img := range imgs {
		got[i] = img.Stale
	}
	if diff := cmp.Diff([]bool{false, true, true, false}, got); diff != "" {
		t.Errorf("Stale mismatch (-want +got):\n%s", diff)
	}
}

func TestStripe(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
		want    [][]int
	}{
		{"more workers than jobs", 2, 8, [][]int{{0}, {1}}},
		{"round robin", 5, 2, [][]int{{0, 2, 4}, {1, 3}}},
		{"single worker", 3, 1, [][]int{{0, 1, 2}}},
		{"zero workers", 2, 0, [][]int{{0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, images.Stripe(tt.n, tt.workers)); diff != "" {
				t.Errorf("Stripe() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderConfig(t *testing.T) {
	png := images.RenderConfig(document.PNG, 600)
	if png.Format != "png" || png.DPI != 600 || png.Quality != 0 {
		t.Errorf("RenderConfig(png) = %+v", png)
	}

	jpg := images.RenderConfig(document.JPEG, 300)
	if jpg.Format != "jpg" || jpg.Quality != images.JPEGQuality {
		t.Errorf("RenderConfig(jpg) = %+v", jpg)
	}
}

func TestRenderable(t *testing.T) {
	if !images.Renderable("application/pdf") {
		t.Error("Renderable(pdf) = false")
	}
	if images.Renderable("image/png") {
		t.Error("Renderable(png) = true")
	}
}

type fakeSystem struct {
	cmd       images.RenderCommand
	renderErr error
}

func (f *fakeSystem) Handler() *images.Handler { return nil }

func (f *fakeSystem) ForDocument(ctx context.Context, documentID uuid.UUID) ([]images.Image, error) {
	return []images.Image{{DocumentID: documentID, PageID: p1, PageNumber: 1}}, nil
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*images.Image, error) {
	if id != p1 {
		return nil, images.ErrNotFound
	}
	return &images.Image{ID: id}, nil
}

func (f *fakeSystem) Data(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	if id != p1 {
		return nil, "", images.ErrNotFound
	}
	return []byte("png-bytes"), "image/png", nil
}

func (f *fakeSystem) Render(ctx context.Context, documentID uuid.UUID, cmd images.RenderCommand) ([]images.Image, error) {
	f.cmd = cmd
	if f.renderErr != nil {
		return nil, f.renderErr
	}
	return []images.Image{}, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		renderErr error
		status    int
	}{
		{"list", http.MethodGet, "/documents/" + doc.String() + "/images", "", nil, http.StatusOK},
		{"list bad id", http.MethodGet, "/documents/nope/images", "", nil, http.StatusBadRequest},
		{"render empty body", http.MethodPost, "/documents/" + doc.String() + "/images", "", nil, http.StatusOK},
		{"render pages", http.MethodPost, "/documents/" + doc.String() + "/images", `{"pages":["` + p2.String() + `"],"format":"jpg","force":true}`, nil, http.StatusOK},
		{"render malformed", http.MethodPost, "/documents/" + doc.String() + "/images", `{"pages":`, nil, http.StatusBadRequest},
		{"render over limit", http.MethodPost, "/documents/" + doc.String() + "/images", "", fmt.Errorf("page 1: %w", images.ErrRenderDPI), http.StatusBadRequest},
		{"render missing document", http.MethodPost, "/documents/" + doc.String() + "/images", "", images.ErrDocumentNotFound, http.StatusNotFound},
		{"find", http.MethodGet, "/images/" + p1.String(), "", nil, http.StatusOK},
		{"find missing", http.MethodGet, "/images/" + p2.String(), "", nil, http.StatusNotFound},
		{"data", http.MethodGet, "/images/" + p1.String() + "/data", "", nil, http.StatusOK},
		{"delete", http.MethodDelete, "/images/" + p1.String(), "", nil, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{renderErr: tt.renderErr}
			mux := http.NewServeMux()
			routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), images.NewHandler(sys, logger).Routes())

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestHandler_RenderCommand(t *testing.T) {
	sys := &fakeSystem{}
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), images.NewHandler(sys, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes())

	body := `{"pages":["` + p2.String() + `","` + p1.String() + `"],"format":"jpg","force":true}`
	req := httptest.NewRequest(http.MethodPost, "/documents/"+doc.String()+"/images", strings.NewReader(body))
	mux.ServeHTTP(httptest.NewRecorder(), req)

	want := images.RenderCommand{Pages: []uuid.UUID{p2, p1}, Format: "jpg", Force: true}
	if diff := cmp.Diff(want, sys.cmd); diff != "" {
		t.Errorf("RenderCommand mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_Data(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), images.NewHandler(&fakeSystem{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/"+p1.String()+"/data", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	if rec.Header().Get("Content-Length") != "9" || rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q, Content-Length = %q", rec.Body.String(), rec.Header().Get("Content-Length"))
	}
}
