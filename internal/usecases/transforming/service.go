package transforming

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/log"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/utils"
)

// Report accounts for every row the transformer saw
type Report struct {
	RowsIn      int
	RowsOut     int
	RowsDropped int
}

// Transformer cleans an extracted table into records matching the target schema
type Transformer interface {
	Transform(ctx context.Context, raw *domain.RawTable) ([]*domain.SalesRecord, *Report, error)
}

type service struct{}

func NewService() Transformer {
	return &service{}
}

var nonIdentifierChars = regexp.MustCompile(`[^a-z0-9_]`)

// SanitizeColumn normalizes a header name to the SQL-safe form the target
// schema uses: trimmed, lowercased, spaces to underscores, everything outside
// [a-z0-9_] removed.
func SanitizeColumn(name string) string {
	sanitized := strings.ToLower(strings.TrimSpace(name))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	return nonIdentifierChars.ReplaceAllString(sanitized, "")
}

// Transform renames and coerces the raw table into the fixed car_sales schema.
// Rows missing a required field (model, year) are dropped and counted; optional
// fields are cleaned best-effort, with unparsable numerics coerced to zero.
// The same input always yields the same output.
func (s *service) Transform(ctx context.Context, raw *domain.RawTable) ([]*domain.SalesRecord, *Report, error) {
	logger := log.ForContext(ctx)
	logger.WithField("rows", len(raw.Rows)).Info("Starting transformation")

	if len(raw.Header) == 0 {
		return nil, nil, ErrEmptyHeader
	}

	colIndex := make(map[string]int, len(raw.Header))
	for i, name := range raw.Header {
		colIndex[SanitizeColumn(name)] = i
	}

	for _, column := range domain.TargetColumns {
		if _, ok := colIndex[column]; !ok {
			return nil, nil, MissingColumnError(column)
		}
	}

	report := &Report{RowsIn: len(raw.Rows)}
	records := make([]*domain.SalesRecord, 0, len(raw.Rows))

	for i, row := range raw.Rows {
		record, ok := s.buildRecord(row, colIndex)
		if !ok {
			logger.WithFields(log.Fields{
				"row":    i + 1,
				"reason": "missing required field (model or year)",
			}).Warn("Dropping row")
			report.RowsDropped++
			continue
		}

		records = append(records, record)
	}

	report.RowsOut = len(records)

	logger.WithFields(log.Fields{
		"rows_in":      report.RowsIn,
		"rows_out":     report.RowsOut,
		"rows_dropped": report.RowsDropped,
	}).Info("Transformation completed")

	return records, report, nil
}

// buildRecord cleans a single row; ok is false when a required field is missing
func (s *service) buildRecord(row []string, colIndex map[string]int) (*domain.SalesRecord, bool) {
	model := strings.TrimSpace(safeGet(row, colIndex[domain.ColumnModel]))
	if model == "" {
		return nil, false
	}

	year, ok := coerceInt(safeGet(row, colIndex[domain.ColumnYear]))
	if !ok || year == 0 {
		return nil, false
	}

	mileage, _ := coerceInt(safeGet(row, colIndex[domain.ColumnMileageKM]))
	salesVolume, _ := coerceInt(safeGet(row, colIndex[domain.ColumnSalesVolume]))
	engineSize, _ := coerceFloat(safeGet(row, colIndex[domain.ColumnEngineSizeL]))
	price, _ := coerceFloat(safeGet(row, colIndex[domain.ColumnPriceUSD]))

	return &domain.SalesRecord{
		Model:               model,
		Year:                year,
		Region:              strings.TrimSpace(safeGet(row, colIndex[domain.ColumnRegion])),
		Color:               strings.TrimSpace(safeGet(row, colIndex[domain.ColumnColor])),
		FuelType:            standardizeCategory(safeGet(row, colIndex[domain.ColumnFuelType])),
		Transmission:        standardizeCategory(safeGet(row, colIndex[domain.ColumnTransmission])),
		EngineSizeL:         utils.RoundWithOneDecimalPlace(engineSize),
		MileageKM:           mileage,
		PriceUSD:            utils.RoundWithTwoDecimalPlace(price),
		SalesVolume:         salesVolume,
		SalesClassification: standardizeCategory(safeGet(row, colIndex[domain.ColumnSalesClassification])),
	}, true
}

// safeGet retrieves row[index] safely, for rows shorter than the header
func safeGet(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}

	return ""
}

// coerceInt parses integer-looking text, accepting a decimal representation
// of a whole-ish value; anything unparsable coerces to zero.
func coerceInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f), true
	}

	return 0, false
}

// coerceFloat parses decimal-looking text; anything unparsable coerces to zero
func coerceFloat(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// standardizeCategory trims and title-cases a categorical label, so values
// like "petrol", "PETROL" and " Petrol " all load as "Petrol".
func standardizeCategory(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
