package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/piechart/pkg/cache"
	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/observability"
)

const testChartJSON = `{
  "width": 400,
  "height": 400,
  "padding": 10,
  "data": [
    {"x": "Rent", "y": 1},
    {"x": "Food", "y": 1},
    {"x": "Other", "y": 2}
  ]
}`

func testServer(cfg serverConfig) http.Handler {
	return newServer(log.NewWithOptions(io.Discard, log.Options{}), cfg).Router()
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, testServer(serverConfig{}), http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string `json:"status"`
		Build  struct {
			Version string `json:"version"`
		} `json:"build"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestPalettesEndpoint(t *testing.T) {
	rec := do(t, testServer(serverConfig{}), http.MethodGet, "/v1/palettes", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Palettes []paletteInfo `json:"palettes"`
		Themes   []string      `json:"themes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	found := false
	for _, p := range body.Palettes {
		if p.Name == "grayscale" {
			found = len(p.Colors) == 4
		}
	}
	if !found {
		t.Errorf("grayscale palette missing or incomplete: %+v", body.Palettes)
	}
	if strings.Join(body.Themes, ",") != "grayscale,material" {
		t.Errorf("themes = %v", body.Themes)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
	}{
		{"json", "/v1/layout", "application/json", testChartJSON},
		{"yaml content type", "/v1/layout", "application/yaml", testChartYAML},
		{"yaml query", "/v1/layout?chart=yaml", "", testChartYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, testServer(serverConfig{}), http.MethodPost, tt.target, tt.contentType, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var layout struct {
				Radius float64 `json:"radius"`
				Slices []struct {
					Path string `json:"path"`
				} `json:"slices"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &layout); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if layout.Radius != 190 {
				t.Errorf("radius = %v, want 190", layout.Radius)
			}
			if len(layout.Slices) != 3 || layout.Slices[0].Path == "" {
				t.Errorf("slices = %+v, want 3 with paths", layout.Slices)
			}
		})
	}
}

func TestRenderEndpoint(t *testing.T) {
	h := testServer(serverConfig{})

	rec := do(t, h, http.MethodPost, "/v1/render?format=svg&title=Budget&interactive=true", "application/json", testChartJSON)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	svg := rec.Body.String()
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "<title>Budget</title>") {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	if rec.Header().Get("Content-Length") != strconv.Itoa(len(svg)) {
		t.Errorf("Content-Length = %s, want %d", rec.Header().Get("Content-Length"), len(svg))
	}
}

func TestRenderEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"bad format", "/v1/render?format=gif", testChartJSON, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad scale", "/v1/render?format=png&scale=big", testChartJSON, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad bool", "/v1/render?interactive=maybe", testChartJSON, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad background", "/v1/render?background=nope", testChartJSON, http.StatusBadRequest, "INVALID_INPUT"},
		{"empty body", "/v1/render", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed chart", "/v1/render", `{`, http.StatusBadRequest, "INVALID_CHART"},
		{"unknown key", "/v1/render", `{"colour": "red"}`, http.StatusBadRequest, "INVALID_CHART"},
		{"bad chart format", "/v1/render?chart=xml", testChartJSON, http.StatusBadRequest, "INVALID_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, testServer(serverConfig{}), http.MethodPost, tt.target, "application/json", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body = %s)", rec.Code, tt.wantStatus, rec.Body)
			}

			var body struct {
				Error errorBody `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if string(body.Error.Code) != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
			if body.Error.Message == "" {
				t.Error("error message should not be empty")
			}
			if body.Error.RequestID != rec.Header().Get(headerRequestID) {
				t.Errorf("request_id = %q, header = %q", body.Error.RequestID, rec.Header().Get(headerRequestID))
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, testServer(serverConfig{}), http.MethodGet, "/v1/render", "", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	h := testServer(serverConfig{})

	rec := do(t, h, http.MethodGet, "/healthz", "", "")
	if _, err := uuid.Parse(rec.Header().Get(headerRequestID)); err != nil {
		t.Errorf("generated request id %q is not a uuid", rec.Header().Get(headerRequestID))
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, incoming)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(headerRequestID); got != incoming {
		t.Errorf("request id = %q, want %q", got, incoming)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(headerRequestID); got == "not-a-uuid" {
		t.Error("invalid incoming request id should be replaced")
	}
}

func TestCORS(t *testing.T) {
	h := testServer(serverConfig{origins: []string{"https://charts.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/layout", nil)
	req.Header.Set("Origin", "https://charts.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://charts.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_CHART", http.StatusBadRequest},
		{"UNSUPPORTED", http.StatusUnsupportedMediaType},
		{"FILE_NOT_FOUND", http.StatusNotFound},
		{"TIMEOUT", http.StatusGatewayTimeout},
		{"RENDER_FAILED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(errors.Code(tt.code)); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestHTTPHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)

	rec := do(t, testServer(serverConfig{}), http.MethodPost, "/v1/layout", "application/json", testChartJSON)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.requests != 1 {
		t.Errorf("OnRequest called %d times, want 1", hooks.requests)
	}
	if hooks.status != rec.Code {
		t.Errorf("OnResponse status = %d, want %d", hooks.status, rec.Code)
	}
	if hooks.id != rec.Header().Get(headerRequestID) {
		t.Errorf("OnResponse request id = %q, want %q", hooks.id, rec.Header().Get(headerRequestID))
	}
	if hooks.path != "/v1/layout" {
		t.Errorf("OnResponse path = %q", hooks.path)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	requests int
	id, path string
	status   int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, id, _, path string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.id, h.path, h.status = id, path, status
}

func TestRenderCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	h := testServer(serverConfig{cache: fc})

	tests := []struct {
		target    string
		wantCache string
	}{
		{"/v1/render?format=svg", "miss"},
		{"/v1/render?format=svg", "hit"},
		{"/v1/render?format=svg&title=Other", "miss"},
		{"/v1/render?format=json", "miss"},
		{"/v1/layout", "miss"},
		{"/v1/layout", "hit"},
	}

	bodies := map[string]string{}
	for _, tt := range tests {
		rec := do(t, h, http.MethodPost, tt.target, "application/json", testChartJSON)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body = %s", tt.target, rec.Code, rec.Body)
		}
		if got := rec.Header().Get(headerCache); got != tt.wantCache {
			t.Errorf("%s: X-Cache = %q, want %q", tt.target, got, tt.wantCache)
		}
		if prev, ok := bodies[tt.target]; ok && prev != rec.Body.String() {
			t.Errorf("%s: cached body differs from rendered body", tt.target)
		}
		bodies[tt.target] = rec.Body.String()
	}
}

func TestRenderCacheDisabled(t *testing.T) {
	h := testServer(serverConfig{})
	for range 2 {
		rec := do(t, h, http.MethodPost, "/v1/render", "application/json", testChartJSON)
		if got := rec.Header().Get(headerCache); got != "miss" {
			t.Errorf("X-Cache = %q, want miss", got)
		}
	}
}

func TestErrorFields(t *testing.T) {
	rec := do(t, testServer(serverConfig{}), http.MethodPost, "/v1/layout", "application/json", `{"style": {"data": {"fill": "nope"}}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body struct {
		Error errorBody `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Error.Fields) != 1 || body.Error.Fields[0] != "style.data.fill" {
		t.Errorf("fields = %v, want [style.data.fill]", body.Error.Fields)
	}
}
