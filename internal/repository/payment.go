package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// Payments is the data access interface for payment records
type Payments interface {
	Create(ctx context.Context, p *model.Payment) error
	List(ctx context.Context) ([]model.Payment, error)
}

type paymentRepo struct{ db *gorm.DB }

// NewPayments creates a payment repository over the given connection handle
func NewPayments(db *gorm.DB) Payments { return &paymentRepo{db} }

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var out []model.Payment
	if err := r.db.WithContext(ctx).Order("payment_id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
