package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// EnsureSettings seeds the settings singleton if no row exists yet.
// Safe to call on every startup.
func (s *SQLiteStore) EnsureSettings(ctx context.Context, defaults models.Settings) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (id, shop_name, shop_phone, currency_symbol) VALUES (?, ?, ?, ?) ON CONFLICT(id) DO NOTHING",
		models.SettingsID, defaults.ShopName, defaults.ShopPhone, defaults.CurrencySymbol,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure settings: %w", err)
	}
	return nil
}

// GetSettings reads the settings singleton. Always hits the database so
// callers see the latest committed value.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	st := &models.Settings{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, shop_name, shop_phone, currency_symbol FROM settings WHERE id = ?",
		models.SettingsID,
	).Scan(&st.ID, &st.ShopName, &st.ShopPhone, &st.CurrencySymbol)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return st, nil
}

// UpdateSettings overwrites the singleton in place.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, st *models.Settings) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE settings SET shop_name = ?, shop_phone = ?, currency_symbol = ? WHERE id = ?",
		st.ShopName, st.ShopPhone, st.CurrencySymbol, models.SettingsID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	st.ID = models.SettingsID
	return nil
}
