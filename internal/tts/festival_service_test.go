package tts

import (
	"testing"
)

func TestDurationStretch(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{rate: 150, expected: 1.0},
		{rate: 300, expected: 0.5},
		{rate: 75, expected: 2.0},
	}

	for _, tt := range tests {
		got := durationStretch(tt.rate)
		if got != tt.expected {
			t.Errorf("durationStretch(%d): ожидалось %.2f, получено %.2f", tt.rate, tt.expected, got)
		}
	}
}
