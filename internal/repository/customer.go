package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// Customers is the data access interface for customer accounts
type Customers interface {
	Create(ctx context.Context, c *model.Customer) error
	ByID(ctx context.Context, id uint) (*model.Customer, error)
	ByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
}

type customerRepo struct{ db *gorm.DB }

// NewCustomers creates a customer repository over the given connection handle
func NewCustomers(db *gorm.DB) Customers { return &customerRepo{db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) ByID(ctx context.Context, id uint) (*model.Customer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var c model.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *customerRepo) ByEmail(ctx context.Context, email string) (*model.Customer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var c model.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var out []model.Customer
	if err := r.db.WithContext(ctx).Order("customer_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
