package catalog

import (
	"context"
	"fmt"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type catalogService struct {
	artifacts *domain.Artifacts
}

func NewCatalogService(artifacts *domain.Artifacts) *catalogService {
	return &catalogService{
		artifacts: artifacts,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, offset, limit int) (domain.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products")
		return domain.ProductPage{}, fmt.Errorf("context error: %w", err)
	}

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total := s.artifacts.Catalog.Len()
	page := domain.ProductPage{
		Items:  []domain.CatalogProduct{},
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}

	for i := offset; i < total && i < offset+limit; i++ {
		code := s.artifacts.Catalog.CodeAt(i)
		page.Items = append(page.Items, domain.CatalogProduct{
			Code: code,
			Name: s.artifacts.Names.Name(code),
		})
	}

	return page, nil
}

func (s *catalogService) GetProduct(ctx context.Context, code string) (domain.CatalogProduct, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by code")
		return domain.CatalogProduct{}, fmt.Errorf("context error: %w", err)
	}

	if _, ok := s.artifacts.Catalog.IndexOf(code); !ok {
		return domain.CatalogProduct{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, code)
	}

	return domain.CatalogProduct{
		Code: code,
		Name: s.artifacts.Names.Name(code),
	}, nil
}
