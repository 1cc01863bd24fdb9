package server

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
)

// MountMessage is the single message sent to a host after it connects.
type MountMessage struct {
	Type       string            `json:"type"`
	HTML       string            `json:"html"`
	Stylesheet string            `json:"stylesheet"`
	Classes    map[string]string `json:"classes"`
}

// handleMount upgrades to a websocket and sends the fragment once. The
// fragment stays mounted until the host closes the connection, stops
// answering pings, or the server shuts down.
func (s *Server) handleMount(w http.ResponseWriter, r *http.Request) {
	if !s.admitMount() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.mounts.Done()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		s.opts.Metrics.WebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.opts.Metrics.MountOpened()
	defer s.opts.Metrics.MountClosed()

	logger := s.logger.With("request_id", chimw.GetReqID(r.Context()), "remote", r.RemoteAddr)
	logger.Info("mounted")
	start := time.Now()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(MountMessage{
		Type:       "mount",
		HTML:       string(s.site.Fragment()),
		Stylesheet: s.site.StylesheetURL(),
		Classes:    s.site.Styles().All(),
	})
	if err != nil {
		s.opts.Metrics.WebSocketError("write")
		logger.Error("mount write failed", "error", err)
		return
	}

	done := make(chan struct{})
	go s.readLoop(conn, done, logger)

	ticker := time.NewTicker(s.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.opts.Metrics.WebSocketError("ping")
				logger.Warn("ping failed", "error", err)
				return
			}

		case <-done:
			logger.Info("unmounted", "duration", time.Since(start))
			return

		case <-s.closing:
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second),
			)
			logger.Info("unmounted on shutdown", "duration", time.Since(start))
			return
		}
	}
}

// readLoop drains the connection so control frames are processed. Hosts
// send nothing meaningful; any data message is ignored.
func (s *Server) readLoop(conn *websocket.Conn, done chan<- struct{}, logger *slog.Logger) {
	defer close(done)

	pongWait := 2 * s.opts.PingInterval
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.opts.Metrics.WebSocketError("read")
				logger.Warn("read error", "error", err)
			}
			return
		}
	}
}
