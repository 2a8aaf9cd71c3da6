package synth

import (
	"math/rand"
	"testing"

	"beautydash/domain/catalog"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, test := range tests {
		if got := clamp(test.x, test.lo, test.hi); got != test.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", test.x, test.lo, test.hi, got, test.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{1.006, 1.01},
		{1.004, 1.0},
		// 1.005 is 1.00499... in float64, so the half cent rounds down
		{1.005, 1.0},
		{45.678, 45.68},
		{-2.345, -2.35},
	}
	for _, test := range tests {
		if got := round2(test.x); got != test.want {
			t.Errorf("round2(%v) = %v, want %v", test.x, got, test.want)
		}
	}
}

func TestWeightedIndex_StaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := catalog.Weights{0.7, 0.2, 0.1}

	counts := make([]int, len(weights))
	const draws = 100000
	for i := 0; i < draws; i++ {
		idx := weightedIndex(rng, weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("Index %d out of range", idx)
		}
		counts[idx]++
	}

	// Empirical frequencies should track the weights within a loose band
	for i, w := range weights {
		freq := float64(counts[i]) / draws
		if freq < w-0.02 || freq > w+0.02 {
			t.Errorf("Weight %d: frequency %.3f far from weight %.3f", i, freq, w)
		}
	}
}

func TestUniformIntRange_Inclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := uniformIntRange(rng, 4, 5)
		if v != 4 && v != 5 {
			t.Fatalf("Value %d outside {4,5}", v)
		}
		seen[v] = true
	}
	if !seen[4] || !seen[5] {
		t.Error("Expected both endpoints to be drawn")
	}
}
