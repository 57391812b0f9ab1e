package models

import "testing"

func TestBillNumber(t *testing.T) {
	tests := []struct {
		existing int
		want     string
	}{
		{0, "B1001"},
		{1, "B1002"},
		{41, "B1042"},
		{9000, "B10001"},
	}
	for _, tt := range tests {
		if got := BillNumber(tt.existing); got != tt.want {
			t.Errorf("BillNumber(%d) = %s, want %s", tt.existing, got, tt.want)
		}
	}
}

func TestPaymentModeValid(t *testing.T) {
	if !PaymentCash.Valid() || !PaymentUPI.Valid() {
		t.Error("known payment modes reported invalid")
	}
	for _, m := range []PaymentMode{"", "cash", "Card"} {
		if m.Valid() {
			t.Errorf("%q reported valid", m)
		}
	}
}
