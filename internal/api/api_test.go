package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/activity-signup/internal/api"
	"github.com/JaimeStill/activity-signup/internal/config"
	"github.com/JaimeStill/activity-signup/internal/infrastructure"
	"github.com/JaimeStill/activity-signup/pkg/logging"
	"github.com/JaimeStill/activity-signup/pkg/middleware"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	handler, err := api.NewHandler(cfg, infrastructure.NewWithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func noRedirect(req *http.Request, via []*http.Request) error {
	return http.ErrUseLastResponse
}

func request(t *testing.T, srv *httptest.Server, method, path string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	client := &http.Client{CheckRedirect: noRedirect}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp, body
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", body, err)
	}
	return result
}

func TestRoot_RedirectsToIndex(t *testing.T) {
	srv := newServer(t)

	resp, _ := request(t, srv, http.MethodGet, "/")

	if resp.StatusCode != http.StatusTemporaryRedirect {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusTemporaryRedirect)
	}
	if loc := resp.Header.Get("Location"); loc != "/static/index.html" {
		t.Errorf("Location = %q, want %q", loc, "/static/index.html")
	}
}

func TestStatic_ServesAssets(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		path        string
		contentType string
	}{
		{"/static/index.html", "text/html"},
		{"/static/app.js", "javascript"},
		{"/static/styles.css", "text/css"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := request(t, srv, http.MethodGet, tt.path)

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want it to contain %q", ct, tt.contentType)
			}
			if len(body) == 0 {
				t.Error("empty body")
			}
		})
	}
}

func TestGetActivities(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodGet, "/activities")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	activities := decode(t, body)
	for _, name := range []string{"Chess Club", "Programming Class"} {
		if _, ok := activities[name]; !ok {
			t.Errorf("missing %q", name)
		}
	}

	chess := activities["Chess Club"].(map[string]any)
	for _, field := range []string{"description", "schedule", "max_participants", "participants"} {
		if _, ok := chess[field]; !ok {
			t.Errorf("missing field %q", field)
		}
	}
	if _, ok := chess["participants"].([]any); !ok {
		t.Error("participants is not a list")
	}
}

func TestSignupForActivity(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodPost, "/activities/Chess%20Club/signup?email=test@example.com")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	msg, _ := decode(t, body)["message"].(string)
	if !strings.Contains(msg, "test@example.com") {
		t.Errorf("message = %q, want it to contain email", msg)
	}

	_, body = request(t, srv, http.MethodGet, "/activities")
	chess := decode(t, body)["Chess Club"].(map[string]any)
	n := 0
	for _, p := range chess["participants"].([]any) {
		if p == "test@example.com" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("participant appears %d times, want 1", n)
	}
}

func TestSignupDuplicate(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	detail, _ := decode(t, body)["detail"].(string)
	if !strings.Contains(detail, "already signed up") {
		t.Errorf("detail = %q, want it to contain %q", detail, "already signed up")
	}
}

func TestSignupNonexistentActivity(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodPost, "/activities/Nonexistent%20Club/signup?email=test@example.com")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	detail, _ := decode(t, body)["detail"].(string)
	if !strings.Contains(detail, "Activity not found") {
		t.Errorf("detail = %q, want it to contain %q", detail, "Activity not found")
	}
}

func TestUnregisterFromActivity(t *testing.T) {
	srv := newServer(t)

	request(t, srv, http.MethodPost, "/activities/Tennis%20Club/signup?email=test2@example.com")

	resp, body := request(t, srv, http.MethodDelete, "/activities/Tennis%20Club/unregister?email=test2@example.com")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	msg, _ := decode(t, body)["message"].(string)
	if !strings.Contains(msg, "Unregistered") {
		t.Errorf("message = %q, want it to contain %q", msg, "Unregistered")
	}
}

func TestUnregisterNonexistentParticipant(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodDelete, "/activities/Tennis%20Club/unregister?email=notregistered@example.com")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	detail, _ := decode(t, body)["detail"].(string)
	if !strings.Contains(detail, "not signed up") {
		t.Errorf("detail = %q, want it to contain %q", detail, "not signed up")
	}
}

func TestGetActivity(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodGet, "/activities/Chess%20Club")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if _, ok := decode(t, body)["participants"]; !ok {
		t.Error("activity record missing participants")
	}

	resp, _ = request(t, srv, http.MethodGet, "/activities/Nonexistent%20Club")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestMissingEmail(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/activities/Chess%20Club/signup"},
		{http.MethodPost, "/activities/Chess%20Club/signup?email=%20%20"},
		{http.MethodDelete, "/activities/Chess%20Club/unregister"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := request(t, srv, tt.method, tt.path)
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
			}

			if _, ok := decode(t, body)["detail"]; !ok {
				t.Error("error body missing detail")
			}
		})
	}
}

func TestBlankEmail_UnknownActivity(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/activities/Nonexistent%20Club/signup?email="},
		{http.MethodPost, "/activities/Nonexistent%20Club/signup?email=%20%20"},
		{http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email="},
		{http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email=%20%20"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := request(t, srv, tt.method, tt.path)
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
			}

			detail, _ := decode(t, body)["detail"].(string)
			if !strings.Contains(detail, "Activity not found") {
				t.Errorf("detail = %q, want it to contain %q", detail, "Activity not found")
			}
		})
	}
}

func TestSignup_InstancesAreIsolated(t *testing.T) {
	first := newServer(t)
	second := newServer(t)

	request(t, first, http.MethodPost, "/activities/Chess%20Club/signup?email=only-first@example.com")

	resp, _ := request(t, second, http.MethodPost, "/activities/Chess%20Club/signup?email=only-first@example.com")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("second instance status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestTrailingSlash_Redirects(t *testing.T) {
	srv := newServer(t)

	resp, _ := request(t, srv, http.MethodGet, "/activities/")
	if resp.StatusCode != http.StatusMovedPermanently {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMovedPermanently)
	}
	if loc := resp.Header.Get("Location"); loc != "/activities" {
		t.Errorf("Location = %q, want %q", loc, "/activities")
	}
}

func TestTrailingSlash_StaysOnHost(t *testing.T) {
	srv := newServer(t)

	resp, _ := request(t, srv, http.MethodGet, "//evil.example/")
	if resp.StatusCode != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusMovedPermanently)
	}
	if loc := resp.Header.Get("Location"); loc != "/evil.example" {
		t.Errorf("Location = %q, want %q", loc, "/evil.example")
	}
}

func TestRequestID_Header(t *testing.T) {
	srv := newServer(t)

	resp, _ := request(t, srv, http.MethodGet, "/healthz")
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("response missing request id header")
	}
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodGet, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if string(body) != "OK" {
		t.Errorf("body = %q, want %q", body, "OK")
	}
}

func TestMetrics_Exposed(t *testing.T) {
	srv := newServer(t)

	request(t, srv, http.MethodPost, "/activities/Chess%20Club/signup?email=metric@example.com")

	resp, body := request(t, srv, http.MethodGet, "/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	text := string(body)
	for _, want := range []string{
		`activity_signups_total{activity="Chess Club",outcome="ok"} 1`,
		`activity_participants{activity="Chess Club"}`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestOpenAPI_Document(t *testing.T) {
	srv := newServer(t)

	resp, body := request(t, srv, http.MethodGet, "/openapi.json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	doc := decode(t, body)
	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", doc["openapi"])
	}

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatal("paths is not an object")
	}
	for _, p := range []string{
		"/activities",
		"/activities/{activity_name}",
		"/activities/{activity_name}/signup",
		"/activities/{activity_name}/unregister",
	} {
		if _, ok := paths[p]; !ok {
			t.Errorf("missing path %q", p)
		}
	}
}
