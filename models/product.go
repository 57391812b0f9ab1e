package models

import "github.com/shopspring/decimal"

// DefaultCategory is assigned to products created without a category.
const DefaultCategory = "General"

// Product represents one sellable item in the shop catalog.
//
// Products are mutable and may be deleted at any time; bills that reference a
// product keep their own copy of the name and price, so catalog changes never
// affect sales history.
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string

	// Name is the display name of the product. Never empty.
	Name string

	// Category groups products in the catalog (e.g. "Dairy").
	// Defaults to DefaultCategory when not provided.
	Category string

	// Price is the unit price. Non-negative; a zero price is allowed.
	Price decimal.Decimal

	// CreatedAt is the Unix timestamp when the product was added.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}
