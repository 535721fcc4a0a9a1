package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// Rentals is the data access interface for rental records
type Rentals interface {
	Create(ctx context.Context, r *model.Rental) error
	List(ctx context.Context) ([]model.Rental, error)
}

type rentalRepo struct{ db *gorm.DB }

// NewRentals creates a rental repository over the given connection handle
func NewRentals(db *gorm.DB) Rentals { return &rentalRepo{db} }

func (r *rentalRepo) Create(ctx context.Context, rec *model.Rental) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *rentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var out []model.Rental
	if err := r.db.WithContext(ctx).Order("rental_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
