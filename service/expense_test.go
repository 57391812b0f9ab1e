package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestExpenseService(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewExpenseService(store)

	t.Run("validation", func(t *testing.T) {
		if _, err := svc.AddExpense(ctx, decimal.RequireFromString("10"), "  ", time.Now()); !errors.Is(err, ErrValidation) {
			t.Errorf("empty note err = %v, want ErrValidation", err)
		}
		if _, err := svc.AddExpense(ctx, decimal.RequireFromString("-5"), "rent", time.Now()); !errors.Is(err, ErrValidation) {
			t.Errorf("negative amount err = %v, want ErrValidation", err)
		}
	})

	t.Run("lifetime total aggregates all expenses", func(t *testing.T) {
		if _, err := svc.AddExpense(ctx, decimal.RequireFromString("120.50"), "electricity", time.Now()); err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}
		e, err := svc.AddExpense(ctx, decimal.RequireFromString("80"), "rent", time.Now().AddDate(0, 0, -2))
		if err != nil {
			t.Fatalf("AddExpense failed: %v", err)
		}

		total, err := svc.Total(ctx)
		if err != nil {
			t.Fatalf("Total failed: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("200.50")) {
			t.Errorf("total = %s, want 200.50", total)
		}

		if err := svc.DeleteExpense(ctx, e.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		total, err = svc.Total(ctx)
		if err != nil {
			t.Fatalf("Total failed: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("120.50")) {
			t.Errorf("total = %s, want 120.50", total)
		}
	})
}
