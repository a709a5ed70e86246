package backfill

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/pythia/internal/logger"
)

// Request represents a backfill invocation request.
type Request struct {
	SeasonID  string
	StartDate *time.Time
	EndDate   *time.Time
	DryRun    bool
}

// DeriveType infers the job type based on populated fields.
func (r Request) DeriveType() (JobType, error) {
	if r.StartDate != nil && r.EndDate != nil {
		return JobTypeDateRange, nil
	}
	if r.SeasonID != "" {
		return JobTypeSeason, nil
	}
	return "", fmt.Errorf("unable to determine job type from request")
}

// Service coordinates job persistence, execution, and status reporting.
type Service struct {
	repo   *Repository
	runner *Runner

	historyLimit int
	dayLimit     int
	pollInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	log *logrus.Entry
}

// NewService constructs a Service. Call Start to launch the worker.
func NewService(repo *Repository, runner *Runner, log *logrus.Entry) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		repo:         repo,
		runner:       runner,
		historyLimit: 10,
		dayLimit:     14,
		pollInterval: 3 * time.Second,
		ctx:          ctx,
		cancel:       cancel,
		log:          logger.OrDiscard(log),
	}
}

// Start launches the background worker loop.
func (s *Service) Start() {
	if err := s.repo.ResetStuckJobs(s.ctx); err != nil {
		s.log.WithError(err).Warn("Failed to reset stuck jobs")
	}

	s.wg.Add(1)
	go s.worker()
}

// Shutdown stops workers and waits for completion.
func (s *Service) Shutdown(ctx context.Context) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Enqueue creates a new job from the provided request.
func (s *Service) Enqueue(ctx context.Context, req Request) (*Job, error) {
	jobType, err := req.DeriveType()
	if err != nil {
		return nil, err
	}

	job := &Job{
		JobType:       jobType,
		Status:        JobStatusQueued,
		StatusMessage: sql.NullString{String: "Queued", Valid: true},
		SeasonID:      sql.NullString{String: req.SeasonID, Valid: req.SeasonID != ""},
	}

	switch jobType {
	case JobTypeSeason:
		start, end, err := SeasonWindow(req.SeasonID)
		if err != nil {
			return nil, err
		}
		job.StartDate = sql.NullTime{Time: start, Valid: true}
		job.EndDate = sql.NullTime{Time: end, Valid: true}
	case JobTypeDateRange:
		job.StartDate = sql.NullTime{Time: truncateDate(*req.StartDate), Valid: true}
		job.EndDate = sql.NullTime{Time: truncateDate(*req.EndDate), Valid: true}
	}
	job.ProgressTotal = len(enumerateDates(job.StartDate.Time, job.EndDate.Time))

	stored, err := s.repo.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AppendEvent(ctx, stored.JobID, "queued", "Job queued"); err != nil {
		s.log.WithError(err).Debug("Failed to record queue event")
	}

	return stored, nil
}

// GetStatus returns the currently running job plus recent history.
func (s *Service) GetStatus(ctx context.Context) (*StatusSummary, error) {
	active, err := s.repo.GetActiveJob(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListRecentJobs(ctx, s.historyLimit)
	if err != nil {
		return nil, err
	}

	summary := &StatusSummary{
		ActiveJob: active,
		History:   history,
	}

	focus := active
	if focus == nil && len(history) > 0 {
		focus = history[0]
	}
	if focus == nil {
		return summary, nil
	}

	days, err := s.repo.ListDays(ctx, focus.JobID, s.dayLimit)
	if err != nil {
		s.log.WithError(err).WithField("job_id", focus.JobID).Warn("Failed to load per-day results")
		return summary, nil
	}
	summary.DaysJobID = focus.JobID
	summary.Days = days
	return summary, nil
}

func (s *Service) worker() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		job, err := s.repo.MarkNextJobRunning(s.ctx)
		if err != nil {
			s.log.WithError(err).Error("Claim job failed")
		}
		if err == nil && job != nil {
			s.executeJob(job)
			continue
		}

		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) executeJob(job *Job) {
	log := s.log.WithField("job_id", job.JobID)

	spec, err := buildSpec(job)
	if err != nil {
		log.WithError(err).Error("Invalid job spec")
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, "Invalid job specification", err)
		return
	}

	reporter := &jobReporter{
		ctx:   s.ctx,
		repo:  s.repo,
		jobID: job.JobID,
		total: len(enumerateDates(spec.Start, spec.End)),
	}

	added, err := s.runner.Run(s.ctx, spec, reporter)
	if err != nil {
		log.WithError(err).WithField("added", added).Warn("Backfill job failed")
		_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusFailed, "Job failed", err)
		return
	}

	log.WithField("added", added).Info("Backfill job complete")
	_ = s.repo.UpdateStatus(s.ctx, job.JobID, JobStatusCompleted, "Job completed", nil)
}

func buildSpec(job *Job) (JobSpec, error) {
	spec := JobSpec{
		Type:     job.JobType,
		SeasonID: job.SeasonID.String,
	}

	switch job.JobType {
	case JobTypeSeason, JobTypeDateRange:
		if !job.StartDate.Valid || !job.EndDate.Valid {
			return spec, fmt.Errorf("job missing start/end dates")
		}
		spec.Start = job.StartDate.Time
		spec.End = job.EndDate.Time
	default:
		return spec, fmt.Errorf("unknown job type %s", job.JobType)
	}

	return spec, nil
}

type jobReporter struct {
	ctx   context.Context
	repo  *Repository
	jobID string
	total int
	added int

	// set by OnJobError while a day is in flight
	dayFailed bool
}

func (r *jobReporter) OnJobStart(spec JobSpec) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, 0, r.total, 0, "Job starting")
}

func (r *jobReporter) OnDateStart(date time.Time, index int, total int) {
	r.dayFailed = false
	msg := fmt.Sprintf("Processing %s (%d/%d)", date.Format("Jan 2, 2006"), index+1, total)
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, index, valueOr(total, r.total), r.added, msg)
}

func (r *jobReporter) OnDateComplete(date time.Time, added int) {
	r.added += added
	_ = r.repo.RecordDay(r.ctx, r.jobID, date, added, r.dayFailed)
	r.dayFailed = false
}

func (r *jobReporter) OnProgress(message string, current int, total int) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, current, valueOr(total, r.total), r.added, message)
}

func (r *jobReporter) OnJobComplete(added int) {
	_ = r.repo.UpdateProgress(r.ctx, r.jobID, r.total, r.total, added, "Job complete")
}

func (r *jobReporter) OnJobError(err error) {
	r.dayFailed = true
	_ = r.repo.AppendEvent(r.ctx, r.jobID, "error", err.Error())
}

func valueOr(val, fallback int) int {
	if val > 0 {
		return val
	}
	return fallback
}

// SeasonWindow maps "2024-25" or "2024" to October 1 through June 30.
func SeasonWindow(seasonID string) (time.Time, time.Time, error) {
	first, _, _ := strings.Cut(seasonID, "-")
	year, err := strconv.Atoi(first)
	if err != nil || year < 1946 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid season %q", seasonID)
	}
	start := time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
