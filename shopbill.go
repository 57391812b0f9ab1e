// Package shopbill is the composition root of the point-of-sale engine.
//
// The application has no network or command-line surface of its own: a UI
// shell (desktop webview, TUI, test harness) calls Open to wire configuration,
// logging, storage and the services together, then drives the services
// directly.
package shopbill

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ankitv/shopbill/cart"
	"github.com/ankitv/shopbill/config"
	"github.com/ankitv/shopbill/pkg/logging"
	"github.com/ankitv/shopbill/service"
	"github.com/ankitv/shopbill/storage"
	"github.com/ankitv/shopbill/storage/sqlite"
)

// App bundles the running services over one open store.
type App struct {
	Catalog  *service.CatalogService
	Billing  *service.BillingService
	Expenses *service.ExpenseService
	Settings *service.SettingsService

	store storage.Store
}

// Open sets up logging, opens (or creates) the database, seeds the settings
// singleton on first launch and returns the wired application.
func Open(ctx context.Context, cfg config.Config) (*App, error) {
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	slog.Info("storage initialized", "database", cfg.DBPath)

	app := &App{
		Catalog:  service.NewCatalogService(store),
		Billing:  service.NewBillingService(store),
		Expenses: service.NewExpenseService(store),
		Settings: service.NewSettingsService(store),
		store:    store,
	}

	if err := app.Settings.Ensure(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	return app, nil
}

// NewCart starts a new sale, returning the empty cart together with the
// speculative bill number to display for it. The authoritative number is
// assigned at checkout and can differ if another bill commits in between.
func (a *App) NewCart(ctx context.Context) (*cart.Cart, string, error) {
	number, err := a.Billing.NextBillNumber(ctx)
	if err != nil {
		return nil, "", err
	}
	return cart.New(), number, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}
