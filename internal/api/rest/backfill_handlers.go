package rest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/fortuna/pythia/internal/backfill"
)

// BackfillHandler queues history ingest jobs and reports their day-by-day
// progress.
type BackfillHandler struct {
	service BackfillService
}

// NewBackfillHandler wires the REST layer to the backfill service.
func NewBackfillHandler(service BackfillService) *BackfillHandler {
	return &BackfillHandler{service: service}
}

type ingestRequest struct {
	SeasonID  string `json:"season_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	DryRun    bool   `json:"dry_run"`
}

// ingestJob is one backfill job as seen by API callers. Progress is counted
// in calendar days of box scores.
type ingestJob struct {
	JobID         string             `json:"job_id"`
	JobType       backfill.JobType   `json:"job_type"`
	Status        backfill.JobStatus `json:"status"`
	StatusMessage string             `json:"status_message,omitempty"`
	SeasonID      string             `json:"season_id,omitempty"`
	StartDate     string             `json:"start_date,omitempty"`
	EndDate       string             `json:"end_date,omitempty"`
	DaysProcessed int                `json:"days_processed"`
	DaysTotal     int                `json:"days_total"`
	DaysRemaining int                `json:"days_remaining"`
	Percent       float64            `json:"percent_complete"`
	RowsAdded     int                `json:"rows_added"`
	RowsPerDay    float64            `json:"rows_per_day"`
	LastError     string             `json:"last_error,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	StartedAt     *time.Time         `json:"started_at,omitempty"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}

type ingestDay struct {
	Date      string `json:"date"`
	RowsAdded int    `json:"rows_added"`
	Failed    bool   `json:"failed,omitempty"`
}

type ingestStatus struct {
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	ActiveJob *ingestJob  `json:"active_job,omitempty"`
	DaysJobID string      `json:"days_job_id,omitempty"`
	Days      []ingestDay `json:"days"`
	History   []ingestJob `json:"history"`
}

// HandleBackfillRequest handles POST /api/v1/history/backfill
func (h *BackfillHandler) HandleBackfillRequest(w http.ResponseWriter, r *http.Request) {
	var body ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req := backfill.Request{SeasonID: body.SeasonID, DryRun: body.DryRun}
	var err error
	if req.StartDate, err = optionalDay("start_date", body.StartDate); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	if req.EndDate, err = optionalDay("end_date", body.EndDate); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	job, err := h.service.Enqueue(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to enqueue backfill job", err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job": newIngestJob(job),
	})
}

// HandleBackfillStatus handles GET /api/v1/history/backfill/status
func (h *BackfillHandler) HandleBackfillStatus(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetStatus(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch status", err)
		return
	}

	respondJSON(w, http.StatusOK, newIngestStatus(summary))
}

func optionalDay(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD, got %q", field, raw)
	}
	return &day, nil
}

func newIngestStatus(summary *backfill.StatusSummary) ingestStatus {
	out := ingestStatus{
		Status:    "idle",
		Message:   "No active jobs",
		DaysJobID: summary.DaysJobID,
		Days:      make([]ingestDay, 0, len(summary.Days)),
		History:   make([]ingestJob, 0, len(summary.History)),
	}

	if active := summary.ActiveJob; active != nil {
		view := newIngestJob(active)
		out.ActiveJob = &view
		out.Status = string(active.Status)
		if active.StatusMessage.Valid {
			out.Message = active.StatusMessage.String
		}
	}

	for _, d := range summary.Days {
		out.Days = append(out.Days, ingestDay{
			Date:      d.Date.Format("2006-01-02"),
			RowsAdded: d.RowsAdded,
			Failed:    d.Failed,
		})
	}
	for _, job := range summary.History {
		out.History = append(out.History, newIngestJob(job))
	}
	return out
}

func newIngestJob(job *backfill.Job) ingestJob {
	view := ingestJob{
		JobID:         job.JobID,
		JobType:       job.JobType,
		Status:        job.Status,
		StatusMessage: job.StatusMessage.String,
		SeasonID:      job.SeasonID.String,
		DaysProcessed: job.ProgressCurrent,
		DaysTotal:     job.ProgressTotal,
		DaysRemaining: max(job.ProgressTotal-job.ProgressCurrent, 0),
		RowsAdded:     job.RowsAdded,
		LastError:     job.LastError.String,
		CreatedAt:     job.CreatedAt,
	}

	if job.ProgressTotal > 0 {
		view.Percent = round1(100 * float64(job.ProgressCurrent) / float64(job.ProgressTotal))
	}
	if job.ProgressCurrent > 0 {
		view.RowsPerDay = round1(float64(job.RowsAdded) / float64(job.ProgressCurrent))
	}
	if job.StartDate.Valid {
		view.StartDate = job.StartDate.Time.Format("2006-01-02")
	}
	if job.EndDate.Valid {
		view.EndDate = job.EndDate.Time.Format("2006-01-02")
	}
	if job.StartedAt.Valid {
		view.StartedAt = &job.StartedAt.Time
	}
	if job.CompletedAt.Valid {
		view.CompletedAt = &job.CompletedAt.Time
	}
	return view
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
