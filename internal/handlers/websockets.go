package handlers

import (
	"encoding/json"
	"time"

	"service_directory/internal/directory"
	"service_directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope types sent to the client.
const (
	envelopeView  = "view"
	envelopeError = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// wsInbound is one client message as seen by the writer loop.
type wsInbound struct {
	event directory.Event
	err   error
}

// @Summary      Directory view session
// @Description  WebSocket. The server sends "view" envelopes; the client sends {"type","value"} events (search, category, toggle_filter, select, dismiss, reset, view). Rejected events come back as "error" envelopes and the session stays open.
// @Tags         directory
// @Param        category  query  string  false  "Initial subcategory slug"
// @Param        view      query  string  false  "Card layout"  Enums(grid,list)
// @Success      101
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /ws/directory [get]
func (h *Handler) wsDirectory(c *gin.Context) {
	vs, err := h.services.Sessions.Open(c.Query("category"), c.Query("view"))
	if err != nil {
		h.respondError(c, err, "ws_session_open_failed")
		return
	}
	defer h.services.Sessions.Close(vs)

	upgrader := websocket.Upgrader{CheckOrigin: h.originAllowed}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err, "request_id", requestIDFrom(c))
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine decodes events; only this goroutine writes.
	inbound := make(chan wsInbound)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, inbound, stop, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := h.send(conn, wsEnvelope{Type: envelopeView, SessionID: vs.ID, Data: vs.View()}); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err, "session_id", vs.ID)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err, "session_id", vs.ID)
				}
				return
			}
		case in := <-inbound:
			if err := h.send(conn, h.handleEvent(vs, in)); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err, "session_id", vs.ID)
				}
				return
			}
		}
	}
}

// handleEvent applies one client message and builds the reply.
func (h *Handler) handleEvent(vs *service.ViewSession, in wsInbound) wsEnvelope {
	if in.err != nil {
		return wsEnvelope{Type: envelopeError, SessionID: vs.ID, Error: "invalid event: " + in.err.Error()}
	}
	view, err := vs.Apply(in.event)
	if err != nil {
		if h.log != nil {
			h.log.Debugw("ws_event_rejected", "session_id", vs.ID, "type", in.event.Type, "err", err)
		}
		return wsEnvelope{Type: envelopeError, SessionID: vs.ID, Data: view, Error: err.Error()}
	}
	return wsEnvelope{Type: envelopeView, SessionID: vs.ID, Data: view}
}

// startReader decodes client events until the connection closes.
func (h *Handler) startReader(conn *websocket.Conn, inbound chan<- wsInbound, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var in wsInbound
		if err := json.Unmarshal(msg, &in.event); err != nil {
			in.err = err
		}
		select {
		case inbound <- in:
		case <-stop:
			return
		}
	}
}

// send writes one envelope with a write deadline.
func (h *Handler) send(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
