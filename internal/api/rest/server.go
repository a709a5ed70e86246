// Package rest exposes the odds engine and history backfill over HTTP.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/logger"
)

// Dependencies are the services the REST server fronts.
type Dependencies struct {
	Odds     OddsProvider
	Runs     RunLister
	Backfill BackfillService
	Checks   map[string]HealthChecker
}

// Server represents the REST API server
type Server struct {
	server *http.Server
	router *mux.Router
}

// NewServer creates a new REST API server
func NewServer(port string, deps Dependencies, log *logrus.Entry) *Server {
	log = logger.OrDiscard(log)
	handler := NewHandler(deps.Odds, deps.Runs, deps.Checks, log)

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/odds/today", handler.GetTodayOdds).Methods(http.MethodGet)
	api.HandleFunc("/odds/custom", handler.GetCustomOdds).Methods(http.MethodGet)
	api.HandleFunc("/odds/week", handler.GetWeekOdds).Methods(http.MethodGet)
	api.HandleFunc("/odds/runs", handler.GetRecentRuns).Methods(http.MethodGet)

	if deps.Backfill != nil {
		backfillHandler := NewBackfillHandler(deps.Backfill)
		api.HandleFunc("/history/backfill", backfillHandler.HandleBackfillRequest).Methods(http.MethodPost)
		api.HandleFunc("/history/backfill/status", backfillHandler.HandleBackfillStatus).Methods(http.MethodGet)
	}

	return &Server{
		router: router,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
