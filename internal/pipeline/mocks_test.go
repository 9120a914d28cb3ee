package pipeline

import (
	"context"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/usecases/transforming"
)

type mockExtractor struct {
	table *domain.RawTable
	err   error
	calls int
}

func (m *mockExtractor) Extract(_ context.Context, _ string) (*domain.RawTable, error) {
	m.calls++
	return m.table, m.err
}

type mockTransformer struct {
	records []*domain.SalesRecord
	report  *transforming.Report
	err     error
	calls   int
}

func (m *mockTransformer) Transform(_ context.Context, _ *domain.RawTable) ([]*domain.SalesRecord, *transforming.Report, error) {
	m.calls++
	return m.records, m.report, m.err
}

type mockLoader struct {
	err    error
	calls  int
	loaded []*domain.SalesRecord
}

func (m *mockLoader) Load(_ context.Context, records []*domain.SalesRecord) error {
	m.calls++
	m.loaded = records
	return m.err
}
