// Package models defines the core domain models for shopbill.
//
// # Models
//
//   - Product: A catalog entry the shop sells
//   - Bill / BillItem: An immutable record of a completed sale and its lines
//   - Expense: A standalone shop expense
//   - Settings: The singleton shop configuration record
//
// # Design Principles
//
//  1. **Denormalized bill lines**: BillItem carries its own copy of the product
//     name and unit price captured at sale time, so editing or deleting a
//     product never changes a historical bill.
//  2. **Exact money**: All monetary values are decimal.Decimal. Rounding to two
//     places happens only at presentation time (PDF/XLSX export); stored values
//     keep full precision.
//  3. **Bills are append-only**: Once created a bill is never updated, only read.
package models
