package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ankitv/shopbill/models"
	"github.com/ankitv/shopbill/storage"
)

// Defaults used when the settings singleton is created on first launch.
const (
	DefaultShopName       = "My Awesome Shop"
	DefaultShopPhone      = "1234567890"
	DefaultCurrencySymbol = "₹"
)

// SettingsService manages the shop's singleton configuration record.
//
// There is deliberately no caching here: every Get hits the store, so views
// that render money or headers always see the latest committed value even
// right after the settings form saves.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Ensure creates the settings row with defaults if it does not exist yet.
// Idempotent; called once at startup.
func (s *SettingsService) Ensure(ctx context.Context) error {
	return s.store.EnsureSettings(ctx, models.Settings{
		ID:             models.SettingsID,
		ShopName:       DefaultShopName,
		ShopPhone:      DefaultShopPhone,
		CurrencySymbol: DefaultCurrencySymbol,
	})
}

// Get returns the current settings.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.store.GetSettings(ctx)
}

// Update validates and overwrites the settings singleton.
func (s *SettingsService) Update(ctx context.Context, shopName, shopPhone, currencySymbol string) (*models.Settings, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return nil, fmt.Errorf("%w: shop name is required", ErrValidation)
	}
	if strings.TrimSpace(currencySymbol) == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	st := &models.Settings{
		ID:             models.SettingsID,
		ShopName:       shopName,
		ShopPhone:      strings.TrimSpace(shopPhone),
		CurrencySymbol: currencySymbol,
	}
	if err := s.store.UpdateSettings(ctx, st); err != nil {
		return nil, err
	}
	slog.Info("settings updated", "shop_name", st.ShopName)
	return st, nil
}
