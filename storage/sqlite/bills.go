package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// CreateBill persists a completed bill.
//
// The bill number is derived from the persisted bill count read inside the
// same transaction as the insert. Reading the count first and inserting in a
// separate step would let two rapid checkouts observe the same count and
// collide; the transaction (plus the UNIQUE index on bill_number) rules that
// out.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Authoritative bill number from the count at commit time.
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills").Scan(&count); err != nil {
		return fmt.Errorf("failed to count bills: %w", err)
	}
	bill.BillNumber = models.BillNumber(count)

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, bill_number, created_at, sub_total, tax, total, payment_mode) VALUES (?, ?, ?, ?, ?, ?, ?)",
		bill.ID, bill.BillNumber, bill.CreatedAt,
		bill.SubTotal.String(), bill.Tax.String(), bill.Total.String(), string(bill.PaymentMode),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	// Insert items preserving cart order via position.
	for i, item := range bill.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_items (bill_id, position, product_id, name, price, quantity, total) VALUES (?, ?, ?, ?, ?, ?, ?)",
			bill.ID, i, item.ProductID, item.Name, item.Price.String(), item.Quantity, item.Total.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBill retrieves a bill by ID, including its items in original order.
func (s *SQLiteStore) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	bill := &models.Bill{}
	var subTotal, tax, total, mode string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, bill_number, created_at, sub_total, tax, total, payment_mode FROM bills WHERE id = ?",
		id,
	).Scan(&bill.ID, &bill.BillNumber, &bill.CreatedAt, &subTotal, &tax, &total, &mode)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if err := scanBillAmounts(bill, subTotal, tax, total, mode); err != nil {
		return nil, err
	}

	items, err := s.billItems(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	bill.Items = items
	return bill, nil
}

// ListBills returns bills matching the filter, most recent first.
func (s *SQLiteStore) ListBills(ctx context.Context, filter storage.BillFilter) ([]models.Bill, error) {
	query := "SELECT id, bill_number, created_at, sub_total, tax, total, payment_mode FROM bills"
	var conds []string
	var args []any

	if filter.Number != "" {
		conds = append(conds, "bill_number LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(filter.Number)+"%")
	}
	if !filter.Day.IsZero() {
		dayStart := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		conds = append(conds, "created_at >= ? AND created_at < ?")
		args = append(args, dayStart.Unix(), dayStart.AddDate(0, 0, 1).Unix())
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, bill_number DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	} else if filter.Offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var bill models.Bill
		var subTotal, tax, total, mode string
		if err := rows.Scan(&bill.ID, &bill.BillNumber, &bill.CreatedAt, &subTotal, &tax, &total, &mode); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if err := scanBillAmounts(&bill, subTotal, tax, total, mode); err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		items, err := s.billItems(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Items = items
	}
	return bills, nil
}

// CountBills returns the number of persisted bills.
func (s *SQLiteStore) CountBills(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bills").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bills: %w", err)
	}
	return count, nil
}

// billItems loads the lines of one bill in stored order.
func (s *SQLiteStore) billItems(ctx context.Context, billID string) ([]models.BillItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT product_id, name, price, quantity, total FROM bill_items WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill items: %w", err)
	}
	defer rows.Close()

	var items []models.BillItem
	for rows.Next() {
		var item models.BillItem
		var price, total string
		if err := rows.Scan(&item.ProductID, &item.Name, &price, &item.Quantity, &total); err != nil {
			return nil, fmt.Errorf("failed to scan bill item: %w", err)
		}
		if item.Price, err = parseAmount("price", price); err != nil {
			return nil, err
		}
		if item.Total, err = parseAmount("total", total); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill items: %w", err)
	}
	return items, nil
}

func scanBillAmounts(bill *models.Bill, subTotal, tax, total, mode string) error {
	var err error
	if bill.SubTotal, err = parseAmount("sub_total", subTotal); err != nil {
		return err
	}
	if bill.Tax, err = parseAmount("tax", tax); err != nil {
		return err
	}
	if bill.Total, err = parseAmount("total", total); err != nil {
		return err
	}
	bill.PaymentMode = models.PaymentMode(mode)
	return nil
}

// escapeLike escapes LIKE wildcards in user-supplied search input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
