package loading

import (
	"context"

	"github.com/pkg/errors"

	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/infrastructure/repository"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/internal/domain"
	"github.com/DigiCrome-Academy/bmw-car-sales-analysis-nagasantoshchavvakula/pkg/log"
)

// Loader writes a cleaned dataset into the destination table
type Loader interface {
	Load(ctx context.Context, records []*domain.SalesRecord) error
}

type service struct {
	repo repository.CarSalesRepository
}

func NewService(repo repository.CarSalesRepository) Loader {
	return &service{
		repo: repo,
	}
}

// Load validates every record against the declared column types and then
// replaces the destination table's contents in one transaction. An empty
// dataset still truncates, leaving an empty queryable table.
func (s *service) Load(ctx context.Context, records []*domain.SalesRecord) error {
	logger := log.ForContext(ctx)
	logger.WithField("rows", len(records)).Info("Starting load")

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return errors.Wrapf(err, "record %d rejected before load", i+1)
		}
	}

	if err := s.repo.Replace(ctx, records); err != nil {
		return errors.Wrap(err, "replacing destination table contents")
	}

	logger.WithField("rows", len(records)).Info("Load completed")

	return nil
}
