package model

// Bike represents a bike in the rental inventory. Status is a free-text
// lifecycle label (available/rented/maintenance by convention, not enforced).
// LocationID 0 means the bike is not assigned to a location.
type Bike struct {
	BikeID     uint    `json:"bike_id" gorm:"column:bike_id;primaryKey"`
	Model      string  `json:"model" gorm:"type:varchar(120)"`
	Type       string  `json:"type" gorm:"column:type;type:varchar(80)"`
	Status     string  `json:"status" gorm:"type:varchar(40)"`
	RentalRate float64 `json:"rental_rate"`
	LocationID uint    `json:"location_id" gorm:"column:location_id"`
}

// TableName overrides the default table name
func (Bike) TableName() string {
	return "bikes"
}
