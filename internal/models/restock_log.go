package models

import "time"

// RestockLog records a single stock adjustment applied through the restock endpoint.
// Rows are append-only and are kept when their product is deleted.
type RestockLog struct {
	ID        int64     `json:"id" db:"id" gorm:"primaryKey"`
	ProductID int64     `json:"product_id" db:"product_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" db:"quantity" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" gorm:"not null;index"`
}

func (RestockLog) TableName() string {
	return "restock_logs"
}
