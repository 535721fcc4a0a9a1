package bikesvc

import (
	"context"
	"errors"
	"strconv"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
)

var (
	ErrNotFound = errors.New("bike not found")
	ErrBadInput = errors.New("bad input")
)

// Input carries the bike form fields as submitted. RentalRate and
// LocationID arrive as raw form strings: blank means 0.
type Input struct {
	Model      string
	Type       string
	Status     string
	RentalRate string
	LocationID string
}

// Service manages the bike inventory
type Service interface {
	List(ctx context.Context) ([]model.Bike, error)
	Create(ctx context.Context, in Input) (*model.Bike, error)
	Get(ctx context.Context, id uint) (*model.Bike, error)
	Update(ctx context.Context, id uint, in Input) (*model.Bike, error)
	Delete(ctx context.Context, id uint) error
}

type service struct{ bikes repository.Bikes }

// New creates the bike service
func New(bikes repository.Bikes) Service { return &service{bikes: bikes} }

func (s *service) List(ctx context.Context) ([]model.Bike, error) {
	return s.bikes.List(ctx)
}

func (s *service) Create(ctx context.Context, in Input) (*model.Bike, error) {
	rate, locID, err := parseFields(in)
	if err != nil {
		return nil, err
	}

	b := &model.Bike{
		Model:      in.Model,
		Type:       in.Type,
		Status:     in.Status,
		RentalRate: rate,
		LocationID: locID,
	}
	if err := s.bikes.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.Bike, error) {
	b, err := s.bikes.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id uint, in Input) (*model.Bike, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rate, locID, err := parseFields(in)
	if err != nil {
		return nil, err
	}

	b.Model = in.Model
	b.Type = in.Type
	b.Status = in.Status
	b.RentalRate = rate
	b.LocationID = locID

	if err := s.bikes.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.bikes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// parseFields applies the form defaults: a blank rate stores 0, a blank
// location stores the 0 "unassigned" sentinel.
func parseFields(in Input) (float64, uint, error) {
	var rate float64
	if in.RentalRate != "" {
		v, err := strconv.ParseFloat(in.RentalRate, 64)
		if err != nil || v < 0 {
			return 0, 0, ErrBadInput
		}
		rate = v
	}

	var locID uint
	if in.LocationID != "" {
		v, err := strconv.ParseUint(in.LocationID, 10, 32)
		if err != nil {
			return 0, 0, ErrBadInput
		}
		locID = uint(v)
	}

	return rate, locID, nil
}
