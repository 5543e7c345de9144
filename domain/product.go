package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     stock_code   TEXT NOT NULL UNIQUE,
//     description  TEXT,
//     unit_price   NUMERIC,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

// Product is a catalog row. Only StockCode and Description are read; they
// feed the display names of recommended products.
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	StockCode   string    `gorm:"column:stock_code;type:text;uniqueIndex"`
	Description string    `gorm:"column:description;type:text"`
	UnitPrice   float64   `gorm:"column:unit_price;type:numeric"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}
