package locationsvc

import (
	"context"
	"errors"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
)

var ErrBadInput = errors.New("bad input")

// Service manages rental locations
type Service interface {
	List(ctx context.Context) ([]model.Location, error)
	Create(ctx context.Context, name, address string) (*model.Location, error)
}

type service struct{ locations repository.Locations }

// New creates the location service
func New(locations repository.Locations) Service { return &service{locations: locations} }

func (s *service) List(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

func (s *service) Create(ctx context.Context, name, address string) (*model.Location, error) {
	if name == "" {
		return nil, ErrBadInput
	}
	l := &model.Location{LocationName: name, Address: address}
	if err := s.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
