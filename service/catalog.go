package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// CatalogService manages the product catalog.
type CatalogService struct {
	store storage.Store
}

// NewCatalogService creates a CatalogService with the given storage backend.
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// CreateProduct validates and persists a new product. An empty category
// defaults to models.DefaultCategory.
func (s *CatalogService) CreateProduct(ctx context.Context, name, category string, price decimal.Decimal) (*models.Product, error) {
	name, category, err := normalizeProduct(name, category, price)
	if err != nil {
		return nil, err
	}

	p := &models.Product{Name: name, Category: category, Price: price}
	if err := s.store.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("product created", "product_id", p.ID, "name", p.Name, "price", p.Price.String())
	return p, nil
}

// UpdateProduct validates and overwrites an existing product.
// Bills that already reference the product keep their captured name and price.
func (s *CatalogService) UpdateProduct(ctx context.Context, id, name, category string, price decimal.Decimal) (*models.Product, error) {
	name, category, err := normalizeProduct(name, category, price)
	if err != nil {
		return nil, err
	}

	p := &models.Product{ID: id, Name: name, Category: category, Price: price}
	if err := s.store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	slog.Info("product updated", "product_id", p.ID, "name", p.Name)
	return p, nil
}

// DeleteProduct removes a product from the catalog. Sales history is
// unaffected; bills keep their denormalized copy of the product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	slog.Info("product deleted", "product_id", id)
	return nil
}

// GetProduct retrieves a product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.store.GetProduct(ctx, id)
}

// ListProducts returns the full catalog ordered by name.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// SearchProducts returns products whose name contains the term,
// case-insensitively. An empty term returns the full catalog.
func (s *CatalogService) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products, nil
	}
	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func normalizeProduct(name, category string, price decimal.Decimal) (string, string, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return "", "", fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if price.IsNegative() {
		return "", "", fmt.Errorf("%w: product price must be non-negative", ErrValidation)
	}
	if category == "" {
		category = models.DefaultCategory
	}
	return name, category, nil
}
