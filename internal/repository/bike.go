package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// Bikes is the data access interface for the bike inventory
type Bikes interface {
	Create(ctx context.Context, b *model.Bike) error
	ByID(ctx context.Context, id uint) (*model.Bike, error)
	List(ctx context.Context) ([]model.Bike, error)
	Update(ctx context.Context, b *model.Bike) error
	Delete(ctx context.Context, id uint) error
}

type bikeRepo struct{ db *gorm.DB }

// NewBikes creates a bike repository over the given connection handle
func NewBikes(db *gorm.DB) Bikes { return &bikeRepo{db} }

func (r *bikeRepo) Create(ctx context.Context, b *model.Bike) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bikeRepo) ByID(ctx context.Context, id uint) (*model.Bike, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var b model.Bike
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *bikeRepo) List(ctx context.Context) ([]model.Bike, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var out []model.Bike
	if err := r.db.WithContext(ctx).Order("bike_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bikeRepo) Update(ctx context.Context, b *model.Bike) error {
	defer prometheus.TrackDBOperation("update")(time.Now())
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bikeRepo) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	res := r.db.WithContext(ctx).Delete(&model.Bike{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
