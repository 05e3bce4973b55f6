package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestSeasonalSeries(t *testing.T) {
	s := SeasonalSeries(12, 2, 0, 24)
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[3]-2) > 1e-12 {
		t.Fatalf("s[3] = %v, want 2", s[3])
	}
	if math.Abs(s[12]-s[0]) > 1e-12 {
		t.Fatalf("series not periodic: s[12] = %v", s[12])
	}
}

func TestRegularAxis(t *testing.T) {
	lat := RegularAxis(-90, 1, 180)
	if len(lat) != 180 {
		t.Fatalf("len = %d, want 180", len(lat))
	}
	if lat[0] != -89.5 || lat[179] != 89.5 {
		t.Fatalf("axis ends = %v, %v", lat[0], lat[179])
	}
}

func TestRampAndOnes(t *testing.T) {
	RequireSliceNearlyEqual(t, Ramp(1, 0.5, 3), []float64{1, 1.5, 2}, 0)
	RequireSliceNearlyEqual(t, Ones(3), []float64{1, 1, 1}, 0)
}
