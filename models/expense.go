package models

import "github.com/shopspring/decimal"

// Expense is a standalone shop expense, independent of any bill.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Amount spent. Non-negative.
	Amount decimal.Decimal

	// Note describes the expense. Never empty.
	Note string

	// Date is the Unix timestamp the expense applies to (user-chosen, not
	// necessarily when it was recorded).
	Date int64
}
