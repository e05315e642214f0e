package models

// Product represents a product entity in the inventory system.
type Product struct {
	ID         int64    `json:"id" db:"id" gorm:"primaryKey"`
	Name       string   `json:"name" db:"name" gorm:"not null;size:255"`
	SKU        string   `json:"sku" db:"sku" gorm:"not null;size:100;index:idx_products_sku"`
	StockLevel int      `json:"stock_level" db:"stock_level" gorm:"not null;default:0"`
	Category   *string  `json:"category" db:"category" gorm:"size:100"`
	Price      *float64 `json:"price" db:"price"`
	Cost       *float64 `json:"cost" db:"cost"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
