package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// Locations is the data access interface for rental locations
type Locations interface {
	Create(ctx context.Context, l *model.Location) error
	List(ctx context.Context) ([]model.Location, error)
}

type locationRepo struct{ db *gorm.DB }

// NewLocations creates a location repository over the given connection handle
func NewLocations(db *gorm.DB) Locations { return &locationRepo{db} }

func (r *locationRepo) Create(ctx context.Context, l *model.Location) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var out []model.Location
	if err := r.db.WithContext(ctx).Order("location_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
