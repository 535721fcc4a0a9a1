package reportsvc

import (
	"context"

	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
)

// LocationCount is one row of the rentals-per-location report
type LocationCount = repository.LocationCount

// Service backs both the dashboard page and the JSON reporting endpoint,
// so both present the same rows for the same database state.
type Service interface {
	RentalsByLocation(ctx context.Context) ([]LocationCount, error)
}

type service struct{ reports repository.Reports }

// New creates the report service
func New(reports repository.Reports) Service { return &service{reports: reports} }

func (s *service) RentalsByLocation(ctx context.Context) ([]LocationCount, error) {
	return s.reports.RentalsByLocation(ctx)
}
