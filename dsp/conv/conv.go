package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// simdThreshold is the kernel length from which the inner loop runs on
// vecmath blocks.
const simdThreshold = 4

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)

	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	accumulate(dst, a, b)
}

// Causal returns the first len(a) samples of the linear convolution of a
// and b. Output i only depends on a[0..i]: changing a[k] leaves every
// output before k bit-identical.
func Causal(a, b []float64) ([]float64, error) {
	result := make([]float64, len(a))
	if err := CausalTo(result, a, b); err != nil {
		return nil, err
	}

	return result, nil
}

// CausalTo writes the first len(a) samples of the convolution of a and b
// into dst. dst must have length len(a) and must not overlap a.
func CausalTo(dst, a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	if len(dst) != len(a) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(a), len(dst))
	}

	// Kernel taps beyond len(a) never reach the kept outputs.
	accumulate(dst, a, b[:min(len(b), len(a))])

	return nil
}

// accumulate clears dst and adds a[i]*b into dst[i:], dropping whatever
// falls past the end of dst.
func accumulate(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	if len(b) >= simdThreshold {
		accumulateVector(dst, a, b)
	} else {
		accumulateScalar(dst, a, b)
	}
}

func accumulateScalar(dst, a, b []float64) {
	for i, x := range a {
		for j, h := range b {
			if i+j >= len(dst) {
				break
			}
			dst[i+j] += x * h
		}
	}
}

// accumulateVector adds one scaled copy of the kernel per input sample.
func accumulateVector(dst, a, b []float64) {
	temp := make([]float64, len(b))

	for i, x := range a {
		m := min(len(b), len(dst)-i)
		if m <= 0 {
			break
		}

		vecmath.ScaleBlock(temp[:m], b[:m], x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp[:m])
	}
}
