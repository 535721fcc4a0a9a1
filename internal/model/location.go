package model

// Location represents a rental location
type Location struct {
	LocationID   uint   `json:"location_id" gorm:"column:location_id;primaryKey"`
	LocationName string `json:"location_name" gorm:"type:varchar(120)"`
	Address      string `json:"address" gorm:"type:varchar(255)"`
}

// TableName overrides the default table name
func (Location) TableName() string {
	return "locations"
}
