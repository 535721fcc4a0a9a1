package rentalsvc

import (
	"context"
	"errors"
	"strconv"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
)

var ErrBadInput = errors.New("bad input")

// Input carries the rental form fields as submitted. The identifier
// fields are required and must be numeric; TotalCost defaults to 0 when
// blank. Referenced customers, bikes and locations are not checked for
// existence, matching the record-keeping semantics of the business.
type Input struct {
	CustomerID  string
	BikeID      string
	LocationID  string
	RentalStart string
	RentalEnd   string
	TotalCost   string
}

// Service manages rental records
type Service interface {
	List(ctx context.Context) ([]model.Rental, error)
	Create(ctx context.Context, in Input) (*model.Rental, error)
}

type service struct{ rentals repository.Rentals }

// New creates the rental service
func New(rentals repository.Rentals) Service { return &service{rentals: rentals} }

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.rentals.List(ctx)
}

func (s *service) Create(ctx context.Context, in Input) (*model.Rental, error) {
	customerID, err := requiredID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	bikeID, err := requiredID(in.BikeID)
	if err != nil {
		return nil, err
	}
	locationID, err := requiredID(in.LocationID)
	if err != nil {
		return nil, err
	}

	var total float64
	if in.TotalCost != "" {
		total, err = strconv.ParseFloat(in.TotalCost, 64)
		if err != nil {
			return nil, ErrBadInput
		}
	}

	r := &model.Rental{
		CustomerID:  customerID,
		BikeID:      bikeID,
		LocationID:  locationID,
		RentalStart: in.RentalStart,
		RentalEnd:   in.RentalEnd,
		TotalCost:   total,
	}
	if err := s.rentals.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func requiredID(s string) (uint, error) {
	if s == "" {
		return 0, ErrBadInput
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrBadInput
	}
	return uint(v), nil
}
