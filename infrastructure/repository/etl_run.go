package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/database/postgres"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
)

const etlRunsTable = "etl_runs"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=etl_run.go -destination=mocks/etl_run.go -package=mocks
type ETLRunRepository interface {
	SaveOrUpdate(ctx context.Context, run *domain.ETLRun) error
	GetLatest(ctx context.Context) (*domain.ETLRun, error)
}

type etlRunRepository struct {
	conn *postgres.Connection
}

func NewETLRunRepository(conn *postgres.Connection) ETLRunRepository {
	return &etlRunRepository{
		conn: conn,
	}
}

// SaveOrUpdate inserts the run record, updating status, metrics and finish
// time when the run was already registered as running.
func (r *etlRunRepository) SaveOrUpdate(ctx context.Context, run *domain.ETLRun) error {
	var metricsJSON []byte
	var err error

	if run.Metrics != nil {
		metricsJSON, err = json.Marshal(run.Metrics)
		if err != nil {
			return fmt.Errorf("error serializing run metrics to JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert(etlRunsTable).
		Columns("id", "status", "source_path", "target_table", "metrics", "error", "started_at", "finished_at").
		Values(
			run.ID,
			run.Status,
			run.SourcePath,
			run.TargetTable,
			metricsJSON,
			run.Error,
			run.StartedAt,
			run.FinishedAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				metrics = EXCLUDED.metrics,
				error = EXCLUDED.error,
				finished_at = EXCLUDED.finished_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building the query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("error saving run %s: %w", run.ID, err)
	}

	return nil
}

// GetLatest returns the most recently started run, or nil when none exists
func (r *etlRunRepository) GetLatest(ctx context.Context) (*domain.ETLRun, error) {
	query, args, err := squirrel.
		Select("id", "status", "source_path", "target_table", "metrics", "error", "started_at", "finished_at").
		From(etlRunsTable).
		OrderBy("started_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building the query: %w", err)
	}

	run := &domain.ETLRun{}
	var metricsJSON []byte
	var runError sql.NullString
	var finishedAt sql.NullTime

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&run.ID,
		&run.Status,
		&run.SourcePath,
		&run.TargetTable,
		&metricsJSON,
		&runError,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning run: %w", err)
	}

	if metricsJSON != nil {
		metrics := &domain.RunMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("error deserializing run metrics JSON: %w", err)
		}
		run.Metrics = metrics
	}

	if runError.Valid {
		run.Error = runError.String
	}
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return run, nil
}
