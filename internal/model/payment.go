package model

// Payment represents a manually recorded payment against a rental. No
// check is made that the amounts sum to the rental's total cost.
type Payment struct {
	PaymentID     uint    `json:"payment_id" gorm:"column:payment_id;primaryKey"`
	RentalID      uint    `json:"rental_id" gorm:"column:rental_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date" gorm:"type:varchar(30)"`
	PaymentMethod string  `json:"payment_method" gorm:"type:varchar(40)"`
}

// TableName overrides the default table name
func (Payment) TableName() string {
	return "payments"
}
