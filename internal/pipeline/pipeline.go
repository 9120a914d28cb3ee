package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/repository"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/config"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/extracting"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/loading"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/transforming"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/log"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/utils"
)

// Runner executes one full extract-transform-load cycle
type Runner interface {
	Run(ctx context.Context) (*domain.ETLRun, error)
}

// Service wires the three steps into a strictly sequential flow. Any step
// failure aborts the run; nothing is retried and nothing partial is committed.
type Service struct {
	extractor   extracting.Extractor
	transformer transforming.Transformer
	loader      loading.Loader
	runRepo     repository.ETLRunRepository
	cfg         *config.Config
}

func New(
	extractor extracting.Extractor,
	transformer transforming.Transformer,
	loader loading.Loader,
	runRepo repository.ETLRunRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		runRepo:     runRepo,
		cfg:         cfg,
	}
}

// Run executes extract, transform and load in order, logging the start and
// end of each step under a per-run ID and recording the run in etl_runs.
// The returned ETLRun describes the run even when err is non-nil.
func (s *Service) Run(ctx context.Context) (*domain.ETLRun, error) {
	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, errors.Wrap(err, "generating run ID")
	}

	ctx = context.WithValue(ctx, log.RunIDKey, runID)
	logger := log.ForContext(ctx)

	run := &domain.ETLRun{
		ID:          runID,
		Status:      domain.RunStatusRunning,
		SourcePath:  s.cfg.Dataset.Path,
		TargetTable: s.cfg.Dataset.TargetTable,
		StartedAt:   time.Now().UTC(),
	}
	s.saveRun(ctx, run)

	logger.WithFields(log.Fields{
		"source": run.SourcePath,
		"target": run.TargetTable,
	}).Info("ETL run started")

	raw, err := s.extractor.Extract(ctx, run.SourcePath)
	if err != nil {
		return s.fail(ctx, run, errors.Wrap(err, "extraction step failed"))
	}

	records, report, err := s.transformer.Transform(ctx, raw)
	if err != nil {
		return s.fail(ctx, run, errors.Wrap(err, "transformation step failed"))
	}

	run.Metrics = &domain.RunMetrics{
		RowsExtracted: report.RowsIn,
		RowsDropped:   report.RowsDropped,
	}

	if err := s.loader.Load(ctx, records); err != nil {
		return s.fail(ctx, run, errors.Wrap(err, "load step failed"))
	}

	run.Metrics.RowsLoaded = len(records)
	run.Status = domain.RunStatusSucceeded
	now := time.Now().UTC()
	run.FinishedAt = &now
	s.saveRun(ctx, run)

	logger.WithFields(log.Fields{
		"rows_extracted": run.Metrics.RowsExtracted,
		"rows_dropped":   run.Metrics.RowsDropped,
		"rows_loaded":    run.Metrics.RowsLoaded,
		"duration":       now.Sub(run.StartedAt).String(),
	}).Info("ETL run completed successfully")

	return run, nil
}

func (s *Service) fail(ctx context.Context, run *domain.ETLRun, err error) (*domain.ETLRun, error) {
	run.Status = domain.RunStatusFailed
	run.Error = err.Error()
	now := time.Now().UTC()
	run.FinishedAt = &now
	s.saveRun(ctx, run)

	log.ForContext(ctx).WithError(err).Error("ETL run aborted")

	return run, err
}

// saveRun records the run's state. Bookkeeping never aborts the pipeline:
// if the row cannot be written the run itself still decides success or
// failure on its own terms.
func (s *Service) saveRun(ctx context.Context, run *domain.ETLRun) {
	if s.runRepo == nil {
		return
	}

	if err := s.runRepo.SaveOrUpdate(ctx, run); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Could not record the run in etl_runs")
	}
}
