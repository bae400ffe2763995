package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
