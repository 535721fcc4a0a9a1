package model

// Rental represents a rental record. Start and end are stored as the
// free-text strings submitted on the form; references are raw identifiers
// with no cascade rules.
type Rental struct {
	RentalID    uint    `json:"rental_id" gorm:"column:rental_id;primaryKey"`
	CustomerID  uint    `json:"customer_id" gorm:"column:customer_id"`
	BikeID      uint    `json:"bike_id" gorm:"column:bike_id"`
	LocationID  uint    `json:"location_id" gorm:"column:location_id"`
	RentalStart string  `json:"rental_start" gorm:"type:varchar(30)"`
	RentalEnd   string  `json:"rental_end" gorm:"type:varchar(30)"`
	TotalCost   float64 `json:"total_cost"`
}

// TableName overrides the default table name
func (Rental) TableName() string {
	return "rentals"
}
