package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// ExpenseService tracks shop expenses. Expenses are independent of billing
// and only contribute to an aggregate lifetime total.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates an ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// AddExpense validates and records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, amount decimal.Decimal, note string, date time.Time) (*models.Expense, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, fmt.Errorf("%w: expense note is required", ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount must be non-negative", ErrValidation)
	}

	e := &models.Expense{Amount: amount, Note: note, Date: date.Unix()}
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}
	slog.Info("expense recorded", "expense_id", e.ID, "amount", e.Amount.String())
	return e, nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return err
	}
	slog.Info("expense deleted", "expense_id", id)
	return nil
}

// ListExpenses returns all expenses, most recent date first.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// Total returns the lifetime sum of all expense amounts.
func (s *ExpenseService) Total(ctx context.Context) (decimal.Decimal, error) {
	return s.store.TotalExpenses(ctx)
}
