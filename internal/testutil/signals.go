package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SeasonalSeries generates a yearly cycle of the given period (in samples)
// on top of a linear trend, the usual shape of monthly climate series.
func SeasonalSeries(period int, amplitude, trend float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / float64(period)
	for i := range out {
		out[i] = amplitude*math.Sin(step*float64(i)) + trend*float64(i)
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// RegularAxis generates n cell centers of width step covering [lo, lo+n*step].
// RegularAxis(-90, 1, 180) yields -89.5, -88.5, ..., 89.5.
func RegularAxis(lo, step float64, n int) []float64 {
	return Ramp(lo+step/2, step, n)
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
