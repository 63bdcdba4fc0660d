package domain

import "testing"

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     StockStatus
	}{
		{"zero stock is out", 0, 10, StatusOut},
		{"negative stock is out", -3, 0, StatusOut},
		{"zero stock with zero threshold is out", 0, 0, StatusOut},
		{"at threshold is low", 10, 10, StatusLow},
		{"below threshold is low", 3, 10, StatusLow},
		{"one above threshold is safe", 11, 10, StatusSafe},
		{"positive stock with zero threshold is safe", 1, 0, StatusSafe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.stock, tc.minStock); got != tc.want {
				t.Fatalf("DeriveStatus(%d, %d) = %s, want %s", tc.stock, tc.minStock, got, tc.want)
			}
		})
	}
}
