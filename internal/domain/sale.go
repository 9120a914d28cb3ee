package domain

import (
	"errors"
	"fmt"
)

// Target schema column names, in destination table order.
const (
	ColumnModel               = "model"
	ColumnYear                = "year"
	ColumnRegion              = "region"
	ColumnColor               = "color"
	ColumnFuelType            = "fuel_type"
	ColumnTransmission        = "transmission"
	ColumnEngineSizeL         = "engine_size_l"
	ColumnMileageKM           = "mileage_km"
	ColumnPriceUSD            = "price_usd"
	ColumnSalesVolume         = "sales_volume"
	ColumnSalesClassification = "sales_classification"
)

// TargetColumns is the exact column set of the car_sales table
var TargetColumns = []string{
	ColumnModel,
	ColumnYear,
	ColumnRegion,
	ColumnColor,
	ColumnFuelType,
	ColumnTransmission,
	ColumnEngineSizeL,
	ColumnMileageKM,
	ColumnPriceUSD,
	ColumnSalesVolume,
	ColumnSalesClassification,
}

// Declared VARCHAR widths of the destination table
var columnWidths = map[string]int{
	ColumnModel:               50,
	ColumnRegion:              50,
	ColumnColor:               30,
	ColumnFuelType:            20,
	ColumnTransmission:        20,
	ColumnSalesClassification: 20,
}

// Declared numeric bounds of the destination table
const (
	// DECIMAL(3,1)
	maxEngineSizeL = 100.0
	// DECIMAL(10,2)
	maxPriceUSD = 100000000.0
)

// Sales classification labels
const (
	ClassificationHigh = "High"
	ClassificationLow  = "Low"
)

var ErrSchemaMismatch = errors.New("value does not fit the declared column type")

// RawTable holds a source file exactly as extracted: the header row and the
// data rows, in file order.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// SalesRecord is one cleaned car sales row, typed to match the car_sales table
type SalesRecord struct {
	Model               string
	Year                int
	Region              string
	Color               string
	FuelType            string
	Transmission        string
	EngineSizeL         float64
	MileageKM           int
	PriceUSD            float64
	SalesVolume         int
	SalesClassification string
}

// Validate checks the record against the declared column types and widths,
// so schema violations surface before any SQL is issued.
func (r *SalesRecord) Validate() error {
	if r.Model == "" {
		return fmt.Errorf("%w: model is NOT NULL but empty", ErrSchemaMismatch)
	}
	if r.Year == 0 {
		return fmt.Errorf("%w: year is NOT NULL but missing", ErrSchemaMismatch)
	}

	textColumns := map[string]string{
		ColumnModel:               r.Model,
		ColumnRegion:              r.Region,
		ColumnColor:               r.Color,
		ColumnFuelType:            r.FuelType,
		ColumnTransmission:        r.Transmission,
		ColumnSalesClassification: r.SalesClassification,
	}
	for column, value := range textColumns {
		if width := columnWidths[column]; len(value) > width {
			return fmt.Errorf(
				"%w: %s value of %d characters exceeds VARCHAR(%d)",
				ErrSchemaMismatch, column, len(value), width,
			)
		}
	}

	if r.EngineSizeL < 0 || r.EngineSizeL >= maxEngineSizeL {
		return fmt.Errorf(
			"%w: engine_size_l value %.1f outside DECIMAL(3,1)",
			ErrSchemaMismatch, r.EngineSizeL,
		)
	}
	if r.PriceUSD < 0 || r.PriceUSD >= maxPriceUSD {
		return fmt.Errorf(
			"%w: price_usd value %.2f outside DECIMAL(10,2)",
			ErrSchemaMismatch, r.PriceUSD,
		)
	}

	return nil
}

// Values returns the record's fields in TargetColumns order, for inserts
func (r *SalesRecord) Values() []interface{} {
	return []interface{}{
		r.Model,
		r.Year,
		r.Region,
		r.Color,
		r.FuelType,
		r.Transmission,
		r.EngineSizeL,
		r.MileageKM,
		r.PriceUSD,
		r.SalesVolume,
		r.SalesClassification,
	}
}
