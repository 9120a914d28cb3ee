package domain

import "time"

// Run statuses persisted to the etl_runs table
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// RunMetrics summarizes what a single pipeline run did to the dataset
type RunMetrics struct {
	RowsExtracted int `json:"rows_extracted"`
	RowsDropped   int `json:"rows_dropped"`
	RowsLoaded    int `json:"rows_loaded"`
}

// ETLRun is the bookkeeping record of one pipeline execution
type ETLRun struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	SourcePath  string      `json:"source_path"`
	TargetTable string      `json:"target_table"`
	Metrics     *RunMetrics `json:"metrics,omitempty"`
	Error       string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	FinishedAt  *time.Time  `json:"finished_at,omitempty"`
}
