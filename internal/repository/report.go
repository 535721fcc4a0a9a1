package repository

import (
	"context"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"gorm.io/gorm"
)

// LocationCount is one row of the rentals-per-location report
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// Reports is the data access interface for aggregate reporting queries
type Reports interface {
	RentalsByLocation(ctx context.Context) ([]LocationCount, error)
}

type reportRepo struct{ db *gorm.DB }

// NewReports creates a report repository over the given connection handle
func NewReports(db *gorm.DB) Reports { return &reportRepo{db} }

// RentalsByLocation counts rentals per location. The left join keeps
// locations with zero rentals in the result; ordering by name keeps the
// rows stable between the rendered and JSON views.
func (r *reportRepo) RentalsByLocation(ctx context.Context) ([]LocationCount, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	const q = `
SELECT l.location_name AS location, COUNT(r.rental_id) AS count
FROM locations l
LEFT JOIN rentals r ON r.location_id = l.location_id
GROUP BY l.location_name
ORDER BY l.location_name`
	var out []LocationCount
	if err := r.db.WithContext(ctx).Raw(q).Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
