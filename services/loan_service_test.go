package services

import "testing"

func TestRemainingDebt(t *testing.T) {
	tests := []struct {
		name    string
		monthly float64
		months  int
		want    string
	}{
		{"whole amounts", 15000, 24, "360000"},
		{"cents do not drift", 1234.56, 36, "44444.16"},
		{"zero months", 999.99, 0, "0"},
		{"single month", 0.1, 3, "0.3"}, // floating point would give 0.30000000000000004
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := remainingDebt(tt.monthly, tt.months)
			if got.String() != tt.want {
				t.Errorf("remainingDebt(%v, %d) = %s, want %s", tt.monthly, tt.months, got.String(), tt.want)
			}
		})
	}
}
