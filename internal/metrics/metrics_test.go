package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, c *Collector) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	return w.Code, string(body)
}

func TestCollector_RecordsAndServes(t *testing.T) {
	c := New()
	c.SetCatalog(12, 3)
	c.ObserveResultSize(4)
	c.SessionOpened()
	c.SessionOpened()
	c.SessionClosed()
	c.ObserveRequest(http.MethodGet, "/api/v1/directory", http.StatusOK, 5*time.Millisecond)

	code, body := scrape(t, c)
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	for _, want := range []string{
		"service_directory_catalog_records 12",
		"service_directory_catalog_rejected_records 3",
		"service_directory_active_view_sessions 1",
		"service_directory_directory_result_size_count 1",
		`service_directory_http_requests_total{method="GET",route="/api/v1/directory",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector
	c.SetCatalog(1, 1)
	c.ObserveResultSize(1)
	c.SessionOpened()
	c.SessionClosed()
	c.ObserveRequest(http.MethodGet, "/health", http.StatusOK, time.Millisecond)

	if code, _ := scrape(t, c); code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", code)
	}
}
