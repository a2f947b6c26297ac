package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"service_directory/internal/metrics"
	"service_directory/internal/service"
)

func TestRequestID(t *testing.T) {
	r := newTestRouter(&service.Service{Directory: &mockDirectory{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if got := w.Header().Get(requestIDHeader); len(got) != 36 {
		t.Fatalf("generated request id: got %q", got)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("propagated request id: got %q", got)
	}
}

func TestRateLimit(t *testing.T) {
	r := newTestRouter(&service.Service{Directory: &mockDirectory{}}, WithRateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes: got %v, want [200 200 429]", codes)
	}

	// health is outside the limited group
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status: %d", w.Code)
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter(&service.Service{Directory: &mockDirectory{}}, WithAllowedOrigins([]string{"https://app.example"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	req.Header.Set("Origin", "https://app.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allowed origin: got %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign origin: got %d, want 403", w.Code)
	}
}

func TestOriginAllowed(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"no config", nil, "https://a.example", true},
		{"no origin header", []string{"https://a.example"}, "", true},
		{"listed", []string{"https://a.example"}, "https://a.example", true},
		{"not listed", []string{"https://a.example"}, "https://b.example", false},
		{"wildcard", []string{"*"}, "https://b.example", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(&service.Service{}, nil, WithAllowedOrigins(tc.allowed))
			req := httptest.NewRequest(http.MethodGet, "/ws/directory", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if got := h.originAllowed(req); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(&service.Service{Directory: &mockDirectory{}}, WithMetrics(metrics.New()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/filters", nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", w.Code)
	}
	want := `service_directory_http_requests_total{method="GET",route="/api/v1/filters",status="200"} 1`
	if !strings.Contains(w.Body.String(), want) {
		t.Fatalf("metrics missing %q:\n%s", want, w.Body.String())
	}
}
