package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMode is the closed set of ways a customer can pay.
type PaymentMode string

const (
	PaymentCash PaymentMode = "Cash"
	PaymentUPI  PaymentMode = "UPI"
)

// Valid reports whether m is one of the known payment modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentUPI:
		return true
	}
	return false
}

// billNumberBase offsets the sequence so the first bill reads "B1001".
const billNumberBase = 1000

// BillNumber formats the human-readable number for the n-th bill, where
// existing is the count of bills already persisted.
func BillNumber(existing int) string {
	return fmt.Sprintf("B%d", billNumberBase+existing+1)
}

// BillItem is one line on a bill: a product sold at a given quantity.
//
// Name and Price are copied from the product at the time it is added to the
// cart, so the line stays correct even if the catalog changes afterwards.
type BillItem struct {
	// ProductID references the catalog product this line was created from.
	// The product may no longer exist.
	ProductID string

	// Name is the product name captured at add-time.
	Name string

	// Price is the unit price captured at add-time.
	Price decimal.Decimal

	// Quantity is the number of units sold. Always >= 1 on a persisted bill.
	Quantity int

	// Total is Price * Quantity, recomputed on every cart mutation.
	Total decimal.Decimal
}

// Bill is the immutable persisted record of a completed sale.
//
// Invariant: Total == SubTotal + Tax, SubTotal == sum of item totals, and
// item.Total == item.Price * item.Quantity for every item, permanently.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// BillNumber is the sequential human-readable number ("B1001", "B1002", ...)
	// assigned at checkout. Never reused, never gap-filled.
	BillNumber string

	// CreatedAt is the Unix timestamp of checkout.
	CreatedAt int64

	// Items are the lines of the sale, in the order they appeared in the cart.
	Items []BillItem

	// SubTotal is the sum of all item totals.
	SubTotal decimal.Decimal

	// Tax is always zero today. The field is kept so a tax policy can be added
	// without a schema change.
	Tax decimal.Decimal

	// Total is the grand total the customer paid (SubTotal + Tax).
	Total decimal.Decimal

	// PaymentMode records how the customer paid.
	PaymentMode PaymentMode
}
