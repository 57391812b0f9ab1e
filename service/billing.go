// Package service implements the business rules of the shop on top of a
// storage.Store: billing/checkout, catalog management, expense tracking and
// the settings singleton.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/cart"
	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// BillingService runs the checkout workflow and serves sales history.
//
// Checkout is serialized with an in-process mutex: the bill number is derived
// from the persisted count, so two overlapping checkouts must never interleave
// their count-then-insert sequences. The store additionally performs that
// sequence inside a single transaction as a second line of defense.
type BillingService struct {
	store storage.Store

	mu sync.Mutex // serializes Checkout
}

// NewBillingService creates a BillingService with the given storage backend.
func NewBillingService(store storage.Store) *BillingService {
	return &BillingService{store: store}
}

// NextBillNumber returns the speculative number the next bill will receive,
// for display while the cart is being assembled. The authoritative number is
// assigned again at persistence time and may differ if another bill was
// committed in between.
func (s *BillingService) NextBillNumber(ctx context.Context) (string, error) {
	count, err := s.store.CountBills(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to compute next bill number: %w", err)
	}
	return models.BillNumber(count), nil
}

// Checkout converts the cart into a persisted bill.
//
// The cart must have at least one line. On success the persisted bill
// (with its assigned ID and authoritative bill number) is returned and the
// cart is cleared for the next sale. If persistence fails the cart is left
// exactly as it was so the sale can be re-attempted.
func (s *BillingService) Checkout(ctx context.Context, c *cart.Cart) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.Empty() {
		return nil, ErrEmptyCart
	}

	totals := c.Totals()
	bill := &models.Bill{
		CreatedAt:   time.Now().Unix(),
		Items:       c.Lines(),
		SubTotal:    totals.Subtotal,
		Tax:         totals.Tax,
		Total:       totals.Total,
		PaymentMode: c.PaymentMode(),
	}

	if err := s.store.CreateBill(ctx, bill); err != nil {
		slog.Error("checkout failed, cart preserved", "error", err)
		return nil, fmt.Errorf("failed to persist bill: %w", err)
	}

	// The write is confirmed; only now is it safe to drop the cart state.
	c.Clear()

	slog.Info("bill created",
		"bill_number", bill.BillNumber,
		"items", len(bill.Items),
		"total", bill.Total.String(),
		"payment_mode", bill.PaymentMode,
	)
	return bill, nil
}

// GetBill retrieves a persisted bill by ID.
func (s *BillingService) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	return s.store.GetBill(ctx, id)
}

// ListBills returns bills matching the filter, most recent first.
func (s *BillingService) ListBills(ctx context.Context, filter storage.BillFilter) ([]models.Bill, error) {
	return s.store.ListBills(ctx, filter)
}

// CountBills returns the number of persisted bills.
func (s *BillingService) CountBills(ctx context.Context) (int, error) {
	return s.store.CountBills(ctx)
}

// SalesTotal sums the grand totals of all bills matching the filter.
func (s *BillingService) SalesTotal(ctx context.Context, filter storage.BillFilter) (decimal.Decimal, error) {
	bills, err := s.store.ListBills(ctx, filter)
	if err != nil {
		return decimal.Decimal{}, err
	}
	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(b.Total)
	}
	return total, nil
}
