package shopbill

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ankitv/shopbill/config"
	"github.com/ankitv/shopbill/export"
	"github.com/ankitv/shopbill/models"
)

func openTestApp(t *testing.T) *App {
	t.Helper()
	app, err := Open(context.Background(), config.Config{
		DBPath:   filepath.Join(t.TempDir(), "shop.db"),
		LogLevel: "error",
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

// TestFullSale walks the happy path end to end: first launch, catalog entry,
// a sale, history lookup and the printable bill.
func TestFullSale(t *testing.T) {
	ctx := context.Background()
	app := openTestApp(t)

	// First launch seeded the settings singleton.
	settings, err := app.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get settings failed: %v", err)
	}
	if settings.ShopName == "" || settings.CurrencySymbol == "" {
		t.Fatalf("settings not seeded: %+v", settings)
	}

	milk, err := app.Catalog.CreateProduct(ctx, "Milk", "Dairy", decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	c, number, err := app.NewCart(ctx)
	if err != nil {
		t.Fatalf("NewCart failed: %v", err)
	}
	if number != "B1001" {
		t.Errorf("speculative number = %s, want B1001", number)
	}

	c.AddProduct(*milk)
	c.AddProduct(*milk)
	if err := c.SetPaymentMode(models.PaymentUPI); err != nil {
		t.Fatalf("SetPaymentMode failed: %v", err)
	}

	bill, err := app.Billing.Checkout(ctx, c)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if bill.BillNumber != "B1001" || !bill.Total.Equal(decimal.RequireFromString("100")) {
		t.Errorf("bill = %s %s, want B1001 100", bill.BillNumber, bill.Total)
	}

	// Deleting the product later must not disturb the recorded sale.
	if err := app.Catalog.DeleteProduct(ctx, milk.ID); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	got, err := app.Billing.GetBill(ctx, bill.ID)
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if got.Items[0].Name != "Milk" || !got.Items[0].Price.Equal(decimal.RequireFromString("50")) {
		t.Errorf("bill item changed after catalog delete: %+v", got.Items[0])
	}

	// The persisted bill renders to a printable document.
	pdf, err := export.BillPDF(got, settings)
	if err != nil {
		t.Fatalf("BillPDF failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("bill export is not a PDF")
	}

	// The next sale advances the displayed number.
	_, next, err := app.NewCart(ctx)
	if err != nil {
		t.Fatalf("NewCart failed: %v", err)
	}
	if next != "B1002" {
		t.Errorf("next speculative number = %s, want B1002", next)
	}
}

// TestReopen verifies the database file carries state across restarts and
// that ensure does not clobber saved settings.
func TestReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "shop.db")
	cfg := config.Config{DBPath: dbPath, LogLevel: "error"}

	app, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := app.Settings.Update(ctx, "Corner Store", "9999999999", "$"); err != nil {
		t.Fatalf("Update settings failed: %v", err)
	}
	milk, err := app.Catalog.CreateProduct(ctx, "Milk", "", decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}
	c, _, err := app.NewCart(ctx)
	if err != nil {
		t.Fatalf("NewCart failed: %v", err)
	}
	c.AddProduct(*milk)
	if _, err := app.Billing.Checkout(ctx, c); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	defer reopened.Close()

	settings, err := reopened.Settings.Get(ctx)
	if err != nil {
		t.Fatalf("Get settings failed: %v", err)
	}
	if settings.ShopName != "Corner Store" {
		t.Errorf("settings lost across restart: %+v", settings)
	}

	count, err := reopened.Billing.CountBills(ctx)
	if err != nil {
		t.Fatalf("CountBills failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	_, number, err := reopened.NewCart(ctx)
	if err != nil {
		t.Fatalf("NewCart failed: %v", err)
	}
	if number != "B1002" {
		t.Errorf("speculative number after restart = %s, want B1002", number)
	}
}
