package postgres

import (
	"context"
	"fmt"
	"shopperSpectrum/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

// FindProductNames returns stock code -> description for every product with a
// non-empty description.
func (r *ProductRepository) FindProductNames(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Select("stock_code", "description").
		Where("description IS NOT NULL AND description <> ''").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find product names: %w", err)
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.StockCode] = p.Description
	}

	return names, nil
}
