// Package websocket pushes odds refreshes to browser clients.
package websocket

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server represents the WebSocket server
type Server struct {
	server *http.Server
	hub    *Hub
	mux    *http.ServeMux
	ctx    context.Context
	cancel context.CancelFunc
	log    *logrus.Entry
}

// NewServer creates a new WebSocket server around hub.
func NewServer(port string, hub *Hub, log *logrus.Entry) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		hub:    hub,
		mux:    http.NewServeMux(),
		ctx:    ctx,
		cancel: cancel,
		log:    logger.OrDiscard(log),
	}

	s.mux.HandleFunc("/ws/odds", s.handleOdds)
	s.mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start runs the hub and serves until Shutdown. A hub started after
// Shutdown stops straight away.
func (s *Server) Start() error {
	go s.hub.Run(s.ctx)

	s.log.WithField("addr", s.server.Addr).Info("WebSocket server listening")
	return s.server.ListenAndServe()
}

// handleOdds upgrades the connection and subscribes it to odds updates.
func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	client := &Client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
	if !s.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// handleHealth returns WebSocket server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "clients": %d}`, s.hub.ClientCount())
}

// Shutdown stops the hub and the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.server.Shutdown(ctx)
}
