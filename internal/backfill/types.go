package backfill

import (
	"database/sql"
	"time"
)

// JobType enumerates the supported backfill job variants.
type JobType string

const (
	JobTypeSeason    JobType = "season"
	JobTypeDateRange JobType = "date_range"
)

// JobStatus represents the lifecycle state for a job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job models the database representation of a history backfill job.
type Job struct {
	JobID           string
	JobType         JobType
	SeasonID        sql.NullString
	StartDate       sql.NullTime
	EndDate         sql.NullTime
	Status          JobStatus
	StatusMessage   sql.NullString
	ProgressCurrent int
	ProgressTotal   int
	RowsAdded       int
	LastError       sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StartedAt       sql.NullTime
	CompletedAt     sql.NullTime
}

// JobSpec describes the work to be performed by the runner.
type JobSpec struct {
	Type     JobType
	SeasonID string
	Start    time.Time
	End      time.Time
	DryRun   bool
}

// Reporter receives lifecycle callbacks from the runner.
type Reporter interface {
	OnJobStart(spec JobSpec)
	OnDateStart(date time.Time, index int, total int)
	OnDateComplete(date time.Time, added int)
	OnProgress(message string, current int, total int)
	OnJobComplete(added int)
	OnJobError(err error)
}

// DayResult is what ingesting one calendar day contributed to a job.
type DayResult struct {
	Date      time.Time
	RowsAdded int
	Failed    bool
}

// StatusSummary is returned to API callers. Days belongs to DaysJobID: the
// running job, or the newest one when nothing runs.
type StatusSummary struct {
	ActiveJob *Job        `json:"active_job,omitempty"`
	History   []*Job      `json:"recent_jobs,omitempty"`
	DaysJobID string      `json:"days_job_id,omitempty"`
	Days      []DayResult `json:"days,omitempty"`
}
