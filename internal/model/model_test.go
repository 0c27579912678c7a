package model

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   float64
		wantOK bool
	}{
		{"Plain", "4.5", 4.5, true},
		{"Integer", "7", 7, true},
		{"Zero", "0.0", 0, true},
		{"Negative", "-1.2", -1.2, true},
		{"Whitespace", " 3.3 ", 3.3, true},
		{"Empty", "", 0, false},
		{"Garbage", "n/a", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDecimal(tc.in)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseDecimal(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestFormValue_UnparseableIsZero(t *testing.T) {
	if got := FormValue(Player{Form: "??"}); got != 0 {
		t.Errorf("FormValue = %v; want 0", got)
	}
	if got := FormValue(Player{Form: "5.5"}); got != 5.5 {
		t.Errorf("FormValue = %v; want 5.5", got)
	}
}

func TestAvailability(t *testing.T) {
	chance := func(n int) *int { return &n }
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"AbsentMeansFull", nil, 100},
		{"Partial", chance(75), 75},
		{"ClampedLow", chance(-5), 0},
		{"ClampedHigh", chance(120), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Availability(Player{ChanceOfPlayingNextRound: tc.in}); got != tc.want {
				t.Errorf("Availability = %d; want %d", got, tc.want)
			}
		})
	}
}
