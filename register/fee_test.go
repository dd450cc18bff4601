package register

import "testing"

func TestFeeMinorUnits(t *testing.T) {
	tests := []struct {
		fee  string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"-50", 0},
		{"free", 0},
		{"500", 50000},
		{"1", 100},
	}
	for _, tt := range tests {
		if got := FeeMinorUnits(tt.fee); got != tt.want {
			t.Errorf("FeeMinorUnits(%q) = %d, want %d", tt.fee, got, tt.want)
		}
	}
}
