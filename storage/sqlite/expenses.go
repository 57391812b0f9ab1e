package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// CreateExpense persists a new expense, generating its ID.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Date == 0 {
		e.Date = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, amount, note, date) VALUES (?, ?, ?, ?)",
		e.ID, e.Amount.String(), e.Note, e.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
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

// ListExpenses returns all expenses, most recent date first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, note, date FROM expenses ORDER BY date DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		var amount string
		if err := rows.Scan(&e.ID, &amount, &e.Note, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Amount, err = parseAmount("amount", amount); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// TotalExpenses sums every expense amount. The sum is computed over decimals
// in Go rather than SQL so TEXT-stored amounts never go through float math.
func (s *SQLiteStore) TotalExpenses(ctx context.Context) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT amount FROM expenses")
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to sum expenses: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount string
		if err := rows.Scan(&amount); err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to scan expense amount: %w", err)
		}
		d, err := parseAmount("amount", amount)
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(d)
	}
	if err := rows.Err(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to iterate expense amounts: %w", err)
	}
	return total, nil
}
