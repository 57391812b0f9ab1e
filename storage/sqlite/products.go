package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// CreateProduct persists a new product, generating its ID and timestamps.
func (s *SQLiteStore) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (id, name, category, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.Category, p.Price.String(), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// GetProduct retrieves a single product by ID.
func (s *SQLiteStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p := &models.Product{}
	var price string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, category, price, created_at, updated_at FROM products WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &p.Category, &price, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p.Price, err = parseAmount("price", price); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct overwrites a product's name, category and price.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET name = ?, category = ?, price = ?, updated_at = ? WHERE id = ?",
		p.Name, p.Category, p.Price.String(), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product from the catalog. Historical bills keep
// their denormalized copies and are untouched.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListProducts returns all products ordered by name.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, price, created_at, updated_at FROM products ORDER BY name COLLATE NOCASE, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var price string
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		if p.Price, err = parseAmount("price", price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}
