package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type testEnvelope struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
}

func dialDirectory(t *testing.T, s *service.Service, query string) (*websocket.Conn, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws/directory", h.wsDirectory)
	srv := httptest.NewServer(r)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/directory"
	u.RawQuery = query

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial error: %v", err)
	}
	return conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) (testEnvelope, service_directory.DirectoryView) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env testEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	var view service_directory.DirectoryView
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &view); err != nil {
			t.Fatalf("unmarshal view: %v", err)
		}
	}
	return env, view
}

func TestWebSocket_ViewSession(t *testing.T) {
	s := newCatalogServices()
	conn, cleanup := dialDirectory(t, s, "category=interior-painting")
	defer cleanup()

	env, view := readEnvelope(t, conn)
	if env.Type != envelopeView || env.SessionID == "" {
		t.Fatalf("bad initial envelope: %+v", env)
	}
	if view.Count != 2 || view.State.CategoryFilter != "interior-painting" {
		t.Fatalf("initial view: count=%d state=%+v", view.Count, view.State)
	}

	send := func(ev directory.Event) {
		t.Helper()
		if err := conn.WriteJSON(ev); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	send(directory.Event{Type: directory.EventToggleFilter, Value: "Premium"})
	env, view = readEnvelope(t, conn)
	if env.Type != envelopeView || view.Count != 1 || view.Services[0].ID != "3" {
		t.Fatalf("after toggle: %+v %+v", env, view.Services)
	}

	send(directory.Event{Type: directory.EventSelect, Value: "3"})
	_, view = readEnvelope(t, conn)
	if view.Selected == nil || view.Selected.Name != "Cabinet Painting" {
		t.Fatalf("after select: %+v", view.Selected)
	}

	// rejected events keep the session open
	send(directory.Event{Type: directory.EventSelect, Value: "missing"})
	env, view = readEnvelope(t, conn)
	if env.Type != envelopeError || env.Error == "" || view.Selected == nil {
		t.Fatalf("after bad select: %+v", env)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	env, _ = readEnvelope(t, conn)
	if env.Type != envelopeError {
		t.Fatalf("after malformed message: %+v", env)
	}

	send(directory.Event{Type: directory.EventCategory, Value: ""})
	env, view = readEnvelope(t, conn)
	if env.Type != envelopeView || view.Count != 3 || view.Selected != nil || view.Heading != "All Services" {
		t.Fatalf("after category reset: %+v", view)
	}

	if s.Sessions.Count() != 1 {
		t.Fatalf("open sessions: %d", s.Sessions.Count())
	}
}

func TestWebSocket_SessionClosedOnDisconnect(t *testing.T) {
	s := newCatalogServices()
	conn, cleanup := dialDirectory(t, s, "")
	defer cleanup()

	readEnvelope(t, conn)
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.Sessions.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("session still open after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWebSocket_BadViewRejectedBeforeUpgrade(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/directory", NewHandler(newCatalogServices(), nil).wsDirectory)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws/directory?view=table", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", w.Code)
	}
}
