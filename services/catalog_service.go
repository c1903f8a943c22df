package services

import (
	"context"

	"storefront/libs"
	"storefront/models"
	"storefront/utils"
)

// CatalogService fetches products from the upstream catalog and applies the
// category and free-text filters. Stateless: every listing is a fresh fetch.
type CatalogService struct {
	client *libs.CatalogClient
}

func NewCatalogService(client *libs.CatalogClient) *CatalogService {
	return &CatalogService{client: client}
}

// ListProducts fetches the catalog and filters it: category first (exact
// match, "All" disables), then the search query.
func (s *CatalogService) ListProducts(ctx context.Context, searchQuery, category string) ([]models.Product, error) {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	products = utils.FilterByCategory(products, category)
	products = utils.FilterProducts(products, searchQuery)
	return products, nil
}

// ListCategories derives the category chips from the current catalog.
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.client.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	return utils.UniqueCategories(products), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.client.FetchProduct(ctx, id)
}
