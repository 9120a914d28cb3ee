package extracting

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/log"
)

var (
	ErrSourceNotFound  = errors.New("source file not found")
	ErrMalformedSource = errors.New("source file is malformed")
)

// Extractor reads a delimited source file into an in-memory table
type Extractor interface {
	Extract(ctx context.Context, path string) (*domain.RawTable, error)
}

type service struct{}

func NewService() Extractor {
	return &service{}
}

// Extract reads the CSV at path, preserving row order. A file with only a
// header row yields an empty table without error; a missing file or broken
// delimiters abort the run.
func (s *service) Extract(ctx context.Context, path string) (*domain.RawTable, error) {
	logger := log.ForContext(ctx)
	logger.WithField("path", path).Info("Starting extraction")

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("error opening source file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row in %s", ErrMalformedSource, path)
		}
		return nil, fmt.Errorf("%w: reading header of %s: %v", ErrMalformedSource, path, err)
	}

	table := &domain.RawTable{Header: header}

	for {
		record, readErr := reader.Read()
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: reading row of %s: %v", ErrMalformedSource, path, readErr)
		}

		table.Rows = append(table.Rows, record)
	}

	logger.WithFields(log.Fields{
		"rows":    len(table.Rows),
		"columns": len(table.Header),
	}).Info("Extraction completed")

	return table, nil
}
