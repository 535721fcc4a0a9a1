package model

// Customer represents a registered customer account stored in the database.
// The password hash is never serialized into responses.
type Customer struct {
	CustomerID   uint   `json:"customer_id" gorm:"column:customer_id;primaryKey"`
	FirstName    string `json:"first_name" gorm:"type:varchar(80)"`
	LastName     string `json:"last_name" gorm:"type:varchar(80)"`
	Email        string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	Phone        string `json:"phone" gorm:"type:varchar(20)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"`
}

// TableName overrides the default table name
func (Customer) TableName() string {
	return "customers"
}
