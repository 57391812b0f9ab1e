package models

// SettingsID is the fixed row id of the settings singleton.
const SettingsID = 1

// Settings is the single shop configuration record. Exactly one row ever
// exists: it is created once by an idempotent ensure operation and then only
// updated in place.
type Settings struct {
	ID int64

	// ShopName is printed on every bill header.
	ShopName string

	// ShopPhone is printed under the shop name.
	ShopPhone string

	// CurrencySymbol is a display-only prefix for money values. It never
	// affects stored amounts.
	CurrencySymbol string
}
