package mathutil

import (
	"math"
	"testing"
)

func TestRoundProfits(t *testing.T) {
	tests := []struct {
		name   string
		profit float64
		want   float64
	}{
		{"Summed float noise", 99.08000000000001, 99.08},
		{"Half cent rounds away", 0.125, 0.13},
		{"Sub-cent gap", 0.004, 0},
		{"Whole euros", 218, 218},
		{"Loss", -1.504, -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.profit); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round(%v) = %v, want %v", tt.profit, got, tt.want)
			}
		})
	}
}

func TestIsZeroGap(t *testing.T) {
	tests := []struct {
		gap  float64
		want bool
	}{
		{0, true},
		{0.01, true},
		{-0.009, true},
		{0.5, false},
		{-8, false},
	}

	for _, tt := range tests {
		if got := IsZero(tt.gap); got != tt.want {
			t.Errorf("IsZero(%v) = %v, want %v", tt.gap, got, tt.want)
		}
	}
}

func TestWithinToleranceOfOptimum(t *testing.T) {
	const optimum = 99.08
	tests := []struct {
		name      string
		profit    float64
		tolerance float64
		want      bool
	}{
		{"Same profit", optimum, 0.01, true},
		{"Different summation order", 99.08000000000001, 1e-9, true},
		{"Greedy shortfall", 97.48, 0.01, false},
		{"Symmetric", 99.10, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(optimum, tt.profit, tt.tolerance); got != tt.want {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, want %v", optimum, tt.profit, tt.tolerance, got, tt.want)
			}
		})
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{"Zero budget", 0, true},
		{"Integer cost", 42, true},
		{"Negative whole", -7, true},
		{"Fractional cost", 20.5, false},
		{"Tiny fraction", 1.0000001, false},
		{"NaN", math.NaN(), false},
		{"Infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWhole(tt.input); got != tt.want {
				t.Errorf("IsWhole(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(3.14) {
		t.Errorf("3.14 should be finite")
	}
	if IsFinite(math.NaN()) {
		t.Errorf("NaN should not be finite")
	}
	if IsFinite(math.Inf(-1)) {
		t.Errorf("-Inf should not be finite")
	}
}

func TestApplyPercentageToCost(t *testing.T) {
	tests := []struct {
		cost float64
		pct  float64
		want float64
	}{
		{20, 10, 2},
		{30, 5, 1.5},
		{50, 20, 10},
		{0, 50, 0},
		{100, -50, -50},
	}

	for _, tt := range tests {
		if got := ApplyPercentage(tt.cost, tt.pct); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ApplyPercentage(%v, %v) = %v, want %v", tt.cost, tt.pct, got, tt.want)
		}
	}
}
