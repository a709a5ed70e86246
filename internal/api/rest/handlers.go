package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/logger"
	"github.com/fortuna/pythia/internal/simulation"
)

const healthTimeout = 2 * time.Second

// Handler serves the odds and health endpoints.
type Handler struct {
	odds   OddsProvider
	runs   RunLister
	checks map[string]HealthChecker
	log    *logrus.Entry
}

// NewHandler creates a new handler. runs may be nil when run history is not
// persisted.
func NewHandler(odds OddsProvider, runs RunLister, checks map[string]HealthChecker, log *logrus.Entry) *Handler {
	return &Handler{
		odds:   odds,
		runs:   runs,
		checks: checks,
		log:    logger.OrDiscard(log),
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	components := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name].HealthCheck(ctx); err != nil {
			h.log.WithError(err).WithField("dependency", name).Warn("Health check failed")
			components[name] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "healthy"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "degraded"
	}

	respondJSON(w, status, map[string]interface{}{
		"status":       overall,
		"service":      "pythia",
		"dependencies": components,
	})
}

// GetTodayOdds handles GET /api/v1/odds/today
func (h *Handler) GetTodayOdds(w http.ResponseWriter, r *http.Request) {
	trials, err := parseTrials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trials parameter", err)
		return
	}

	odds, err := h.odds.Today(r.Context(), trials)
	if err != nil {
		h.respondOddsError(w, "Failed to compute today's odds", err)
		return
	}

	respondJSON(w, http.StatusOK, odds)
}

// GetCustomOdds handles GET /api/v1/odds/custom
func (h *Handler) GetCustomOdds(w http.ResponseWriter, r *http.Request) {
	teamA, teamB, ok := teamParams(w, r)
	if !ok {
		return
	}
	trials, err := parseTrials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trials parameter", err)
		return
	}

	odds, err := h.odds.Custom(r.Context(), teamA, teamB, trials)
	if err != nil {
		h.respondOddsError(w, "Failed to compute matchup odds", err)
		return
	}

	respondJSON(w, http.StatusOK, odds)
}

// GetWeekOdds handles GET /api/v1/odds/week
func (h *Handler) GetWeekOdds(w http.ResponseWriter, r *http.Request) {
	teamA, teamB, ok := teamParams(w, r)
	if !ok {
		return
	}
	trials, err := parseTrials(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid trials parameter", err)
		return
	}

	odds, err := h.odds.Week(r.Context(), teamA, teamB, trials)
	if err != nil {
		h.respondOddsError(w, "Failed to compute weekly odds", err)
		return
	}

	respondJSON(w, http.StatusOK, odds)
}

// GetRecentRuns handles GET /api/v1/odds/runs
func (h *Handler) GetRecentRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		respondError(w, http.StatusNotFound, "Run history is not enabled", nil)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 200 {
			limit = l
		}
	}

	runs, err := h.runs.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch runs", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

func (h *Handler) respondOddsError(w http.ResponseWriter, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error(message)
	}
	respondError(w, status, message, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, simulation.ErrUnknownTeam):
		return http.StatusNotFound
	case errors.Is(err, simulation.ErrInvalidTrialCount), errors.Is(err, simulation.ErrEmptyDayRange):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// parseTrials reads ?trials=. Absent or zero means the service default.
func parseTrials(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("trials"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", simulation.ErrInvalidTrialCount, raw)
	}
	return n, nil
}

func teamParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	teamA := strings.TrimSpace(q.Get("team1"))
	teamB := strings.TrimSpace(q.Get("team2"))
	if teamA == "" || teamB == "" {
		respondError(w, http.StatusBadRequest, "team1 and team2 are required", nil)
		return "", "", false
	}
	return teamA, teamB, true
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}
