package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/config"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/pipeline"
)

// ETLSyncConfig is the scheduler's slice of the application config
type ETLSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ETLSyncStatus reports the scheduler state to the status API
type ETLSyncStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	RunInProgress   bool       `json:"run_in_progress"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// ETLSyncService schedules and executes full pipeline runs
type ETLSyncService struct {
	scheduler         *gocron.Scheduler
	config            ETLSyncConfig
	runner            pipeline.Runner
	runLock           sync.Mutex
	running           bool
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

// NewETLSyncService builds the scheduler around the pipeline runner
func NewETLSyncService(runner pipeline.Runner, appConfig *config.Config) *ETLSyncService {
	syncConfig := ETLSyncConfig{
		CronSchedule: appConfig.ETLSync.CronSchedule,
		SyncEnabled:  appConfig.ETLSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("ETL sync scheduler configuration loaded")

	return &ETLSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		runner:    runner,
	}
}

// Start registers the cron job and runs the scheduler until ctx is cancelled
func (s *ETLSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Scheduled ETL sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting ETL sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling the ETL sync job: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping ETL sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the pipeline outside the cron schedule. The run is
// detached from the caller's context so an HTTP response does not cancel it.
func (s *ETLSyncService) TriggerManualSync() {
	logrus.Info("Manual ETL run triggered")
	go s.runPipeline(context.Background())
}

// Status reports whether a run is in progress and when the last one happened
func (s *ETLSyncService) Status() ETLSyncStatus {
	s.runLock.Lock()
	defer s.runLock.Unlock()

	status := ETLSyncStatus{
		Enabled:       s.config.SyncEnabled,
		CronSchedule:  s.config.CronSchedule,
		RunInProgress: s.running,
	}

	if !s.lastRunStartedAt.IsZero() {
		started := s.lastRunStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastRunFinishedAt.IsZero() {
		finished := s.lastRunFinishedAt
		status.LastCompletedAt = &finished
	}

	return status
}

// runPipeline executes one run, skipping when another is already in progress.
// The destination table is single-writer; overlapping runs must not race on it.
func (s *ETLSyncService) runPipeline(ctx context.Context) {
	s.runLock.Lock()
	if s.running {
		s.runLock.Unlock()
		logrus.Info("ETL run already in progress, skipping")
		return
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runLock.Unlock()

	defer func() {
		s.runLock.Lock()
		s.running = false
		s.lastRunFinishedAt = time.Now()
		s.runLock.Unlock()
	}()

	if _, err := s.runner.Run(ctx); err != nil {
		logrus.WithError(err).Error("Scheduled ETL run failed")
		return
	}

	logrus.Info("Scheduled ETL run finished")
}
