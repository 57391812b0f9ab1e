// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// BillFilter narrows and pages a bill listing. The zero value matches
// everything.
type BillFilter struct {
	// Number matches bills whose bill number contains this substring
	// (case-insensitive).
	Number string

	// Day, when non-zero, matches bills created on that calendar day in the
	// local timezone.
	Day time.Time

	// Limit caps the number of returned bills. Zero means no limit.
	Limit int

	// Offset skips that many bills for pagination.
	Offset int
}

// Store defines the interface for the shop's persistent data.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateProduct persists a new product and populates its ID.
	CreateProduct(ctx context.Context, p *models.Product) error

	// GetProduct retrieves a product by ID. Returns ErrNotFound if absent.
	GetProduct(ctx context.Context, id string) (*models.Product, error)

	// UpdateProduct overwrites the stored product's name, category and price.
	// Returns ErrNotFound if the product does not exist.
	UpdateProduct(ctx context.Context, p *models.Product) error

	// DeleteProduct removes a product from the catalog. Bills referencing the
	// product are unaffected. Returns ErrNotFound if absent.
	DeleteProduct(ctx context.Context, id string) error

	// ListProducts returns all products ordered by name.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// CreateBill persists a completed bill. It assigns the ID, the creation
	// timestamp and the authoritative bill number; the number is derived from
	// the persisted bill count inside the same transaction as the insert, so
	// two concurrent creates can never receive the same number.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by ID, items in original order.
	// Returns ErrNotFound if absent.
	GetBill(ctx context.Context, id string) (*models.Bill, error)

	// ListBills returns bills matching the filter, most recent first.
	ListBills(ctx context.Context, filter BillFilter) ([]models.Bill, error)

	// CountBills returns the number of persisted bills.
	CountBills(ctx context.Context) (int, error)

	// CreateExpense persists a new expense and populates its ID.
	CreateExpense(ctx context.Context, e *models.Expense) error

	// DeleteExpense removes an expense. Returns ErrNotFound if absent.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpenses returns all expenses, most recent date first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// TotalExpenses returns the lifetime sum of all expense amounts.
	TotalExpenses(ctx context.Context) (decimal.Decimal, error)

	// EnsureSettings creates the settings singleton with the given defaults if
	// no row exists yet. Calling it again is a no-op.
	EnsureSettings(ctx context.Context, defaults models.Settings) error

	// GetSettings returns the settings singleton.
	// Returns ErrNotFound if EnsureSettings has never run.
	GetSettings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings overwrites the settings singleton in place.
	UpdateSettings(ctx context.Context, s *models.Settings) error

	// Close releases any resources held by the store.
	Close() error
}
