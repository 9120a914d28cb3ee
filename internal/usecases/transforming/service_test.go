package transforming

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
)

// sourceHeader is the header row of the source file, before sanitization
var sourceHeader = []string{
	"Model", "Year", "Region", "Color", "Fuel_Type", "Transmission",
	"Engine_Size_L", "Mileage_KM", "Price_USD", "Sales_Volume", "Sales_Classification",
}

func TestSanitizeColumn(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "already clean", in: "model", expected: "model"},
		{name: "uppercase with underscores", in: "Engine_Size_L", expected: "engine_size_l"},
		{name: "surrounding whitespace", in: "  Mileage_KM ", expected: "mileage_km"},
		{name: "spaces become underscores", in: "Sales Volume", expected: "sales_volume"},
		{name: "special characters removed", in: "Price (USD)", expected: "price_usd"},
		{name: "empty", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeColumn(tt.in))
		})
	}
}

func TestTransform_ScenarioRow(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			{"BMW X5", "2020", "North America", "Black", "Petrol", "Automatic", "3.0", "25000", "55000.00", "120", "High"},
		},
	}

	records, report, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, &domain.SalesRecord{
		Model:               "BMW X5",
		Year:                2020,
		Region:              "North America",
		Color:               "Black",
		FuelType:            "Petrol",
		Transmission:        "Automatic",
		EngineSizeL:         3.0,
		MileageKM:           25000,
		PriceUSD:            55000.00,
		SalesVolume:         120,
		SalesClassification: "High",
	}, records[0])

	assert.Equal(t, 1, report.RowsIn)
	assert.Equal(t, 1, report.RowsOut)
	assert.Equal(t, 0, report.RowsDropped)
}

func TestTransform_NumericPrecision(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			{"320i", "2018", "Europe", "White", "Diesel", "Manual", "2.0", "15000", "45000.50", "30", "Low"},
		},
	}

	records, _, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 2.0, records[0].EngineSizeL)
	assert.Equal(t, 15000, records[0].MileageKM)
	assert.Equal(t, 45000.50, records[0].PriceUSD)
}

func TestTransform_DropsRowsMissingRequiredFields(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			{"", "2020", "Asia", "Blue", "Petrol", "Manual", "1.6", "1000", "30000", "10", "Low"},
			{"X3", "", "Asia", "Blue", "Petrol", "Manual", "1.6", "1000", "30000", "10", "Low"},
			{"X3", "not-a-year", "Asia", "Blue", "Petrol", "Manual", "1.6", "1000", "30000", "10", "Low"},
			{"X3", "2021", "Asia", "Blue", "Petrol", "Manual", "1.6", "1000", "30000", "10", "Low"},
		},
	}

	records, report, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)

	assert.Len(t, records, 1)
	assert.Equal(t, "X3", records[0].Model)
	assert.Equal(t, 4, report.RowsIn)
	assert.Equal(t, 1, report.RowsOut)
	assert.Equal(t, 3, report.RowsDropped)
}

func TestTransform_CoercionAndStandardization(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			// short row, unparsable numerics, inconsistent casing
			{"  5 Series ", "2024.0", "Asia", " Red", "PETROL", "automatic", "abc", "", "95000.499", "12.0", " high "},
		},
	}

	records, report, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "5 Series", record.Model)
	assert.Equal(t, 2024, record.Year)
	assert.Equal(t, "Red", record.Color)
	assert.Equal(t, "Petrol", record.FuelType)
	assert.Equal(t, "Automatic", record.Transmission)
	assert.Equal(t, 0.0, record.EngineSizeL)
	assert.Equal(t, 0, record.MileageKM)
	assert.Equal(t, 95000.50, record.PriceUSD)
	assert.Equal(t, 12, record.SalesVolume)
	assert.Equal(t, domain.ClassificationHigh, record.SalesClassification)
	assert.Equal(t, 0, report.RowsDropped)
}

func TestTransform_RowsShorterThanHeader(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			{"i4", "2023"},
		},
	}

	records, _, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "i4", records[0].Model)
	assert.Equal(t, 2023, records[0].Year)
	assert.Empty(t, records[0].Region)
	assert.Zero(t, records[0].PriceUSD)
}

func TestTransform_MissingColumnFails(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: []string{"Model", "Year", "Region"},
		Rows:   [][]string{{"X5", "2020", "Europe"}},
	}

	_, _, err := service.Transform(context.Background(), raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTransform_EmptyHeaderFails(t *testing.T) {
	service := NewService()

	_, _, err := service.Transform(context.Background(), &domain.RawTable{})
	assert.ErrorIs(t, err, ErrEmptyHeader)
}

func TestTransform_HeaderOnlyTable(t *testing.T) {
	service := NewService()

	records, report, err := service.Transform(context.Background(), &domain.RawTable{Header: sourceHeader})
	require.NoError(t, err)

	assert.Empty(t, records)
	assert.Equal(t, 0, report.RowsIn)
	assert.Equal(t, 0, report.RowsDropped)
}

func TestTransform_Deterministic(t *testing.T) {
	service := NewService()

	raw := &domain.RawTable{
		Header: sourceHeader,
		Rows: [][]string{
			{"X5", "2020", "Europe", "Black", "petrol", "manual", "3.0", "100", "50000", "5", "High"},
			{"", "2020", "Europe", "Black", "petrol", "manual", "3.0", "100", "50000", "5", "High"},
		},
	}

	first, firstReport, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)

	second, secondReport, err := service.Transform(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)
}
