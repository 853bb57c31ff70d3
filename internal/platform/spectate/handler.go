package spectate

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Handler serves the spectator HTTP endpoints.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates the spectator endpoints for hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Routes returns a mux with GET /sessions and GET /watch?id=<session>.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", h.HandleSessions)
	mux.HandleFunc("GET /watch", h.HandleWatch)
	return mux
}

// HandleSessions lists live sessions as a JSON array.
func (h *Handler) HandleSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.hub.Sessions()); err != nil {
		h.hub.logger.Warn("cannot write session list", "error", err)
	}
}

// HandleWatch upgrades to a websocket and streams one session's frames until
// the session ends or the viewer disconnects.
func (h *Handler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("id")
	if sessionID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	sub, ok := h.hub.subscribe(sessionID)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.hub.logger.Warn("upgrade failed", "session", sessionID, "error", err)
		h.hub.unsubscribe(sessionID, sub)
		return
	}
	defer conn.Close()

	h.hub.logger.Info("spectator joined", "session", sessionID, "remote", r.RemoteAddr)

	// Drain the read side so close frames are processed; viewers send nothing else.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-sub.send:
			//nolint:errcheck // A failed deadline surfaces on the write below
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				//nolint:errcheck // Best-effort close frame, the connection is dropped either way
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.hub.unsubscribe(sessionID, sub)
				return
			}
		case <-gone:
			h.hub.unsubscribe(sessionID, sub)
			h.hub.logger.Info("spectator left", "session", sessionID)
			return
		}
	}
}
