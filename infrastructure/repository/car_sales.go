package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/database/postgres"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
)

const (
	defaultCarSalesTable = "car_sales"

	// Rows inserted per statement while replacing the table contents
	insertBatchSize = 500
)

//go:generate mockgen -source=car_sales.go -destination=mocks/car_sales.go -package=mocks
type CarSalesRepository interface {
	Replace(ctx context.Context, records []*domain.SalesRecord) error
	Count(ctx context.Context) (int, error)
}

type carSalesRepository struct {
	conn  *postgres.Connection
	table string
}

func NewCarSalesRepository(conn *postgres.Connection, table string) CarSalesRepository {
	if table == "" {
		table = defaultCarSalesTable
	}

	return &carSalesRepository{
		conn:  conn,
		table: table,
	}
}

// Replace truncates the destination table and inserts all records inside a
// single transaction. A failed run never leaves a half-written table: either
// the new dataset replaces the old one completely or the old one survives.
func (r *carSalesRepository) Replace(ctx context.Context, records []*domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", r.table)); err != nil {
			return fmt.Errorf("error truncating table %s: %w", r.table, err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(records) {
				end = len(records)
			}

			if err := r.insertBatch(ctx, tx, records[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *carSalesRepository) insertBatch(ctx context.Context, tx *sql.Tx, records []*domain.SalesRecord) error {
	builder := squirrel.StatementBuilder.
		Insert(r.table).
		Columns(domain.TargetColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(record.Values()...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building the insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error inserting into %s: %w", r.table, err)
	}

	return nil
}

func (r *carSalesRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(r.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building the query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting rows in %s: %w", r.table, err)
	}

	return count, nil
}
