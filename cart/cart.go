// Package cart implements the in-memory cash-register cart: an ordered list
// of line items built up by user interaction and turned into a persisted bill
// at checkout.
//
// The cart is a plain state machine with no storage or rendering imports, so
// the billing workflow can be tested without a UI harness or a database.
// It is not safe for concurrent use; the application mutates it from a single
// interaction loop.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/models"
)

var (
	// ErrLineNotFound is returned when a quantity change targets a line index
	// that does not exist.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrInvalidPaymentMode is returned for a payment mode outside the closed
	// enumeration.
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
)

// Totals is the derived money state of a cart.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal // always zero today
	Total    decimal.Decimal
}

// Cart accumulates line items for the sale in progress.
type Cart struct {
	lines []models.BillItem
	mode  models.PaymentMode
}

// New returns an empty cart paying by cash.
func New() *Cart {
	return &Cart{mode: models.PaymentCash}
}

// AddProduct adds one unit of the product. If a line for the same product
// already exists its quantity is incremented; otherwise a new line is
// appended. The product's name and price are copied into the line so later
// catalog edits cannot change this sale.
func (c *Cart) AddProduct(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			c.lines[i].Total = lineTotal(c.lines[i])
			return
		}
	}
	c.lines = append(c.lines, models.BillItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
		Total:     p.Price,
	})
}

// SetQuantity changes the quantity of the line at index. A quantity below 1
// removes the line instead (and is a no-op when the line is already gone,
// so repeated removal is idempotent). A quantity of 1 or more on a missing
// index is a programming error and returns ErrLineNotFound.
func (c *Cart) SetQuantity(index, quantity int) error {
	if quantity < 1 {
		c.RemoveLine(index)
		return nil
	}
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines[index].Quantity = quantity
	c.lines[index].Total = lineTotal(c.lines[index])
	return nil
}

// RemoveLine deletes the line at index, preserving the relative order of the
// remaining lines. Out-of-range indexes are ignored.
func (c *Cart) RemoveLine(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

// SetPaymentMode switches the payment mode for the sale in progress.
func (c *Cart) SetPaymentMode(mode models.PaymentMode) error {
	if !mode.Valid() {
		return ErrInvalidPaymentMode
	}
	c.mode = mode
	return nil
}

// PaymentMode returns the currently selected payment mode.
func (c *Cart) PaymentMode() models.PaymentMode {
	return c.mode
}

// Lines returns a copy of the current line items in order.
func (c *Cart) Lines() []models.BillItem {
	out := make([]models.BillItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Totals computes the derived money state: subtotal is the sum of line
// totals, tax is fixed at zero, and the grand total equals the subtotal.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total)
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      decimal.Zero,
		Total:    subtotal,
	}
}

// Clear drops every line and resets the payment mode to cash, ready for the
// next sale.
func (c *Cart) Clear() {
	c.lines = nil
	c.mode = models.PaymentCash
}

func lineTotal(item models.BillItem) decimal.Decimal {
	return item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
