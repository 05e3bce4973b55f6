package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-climgrid/dsp/conv"
)

// Errors returned by the smoothers.
var (
	ErrEmptyInput     = errors.New("smooth: empty input")
	ErrInvalidWindow  = errors.New("smooth: window must be positive")
	ErrLengthMismatch = errors.New("smooth: buffer length mismatch")
)

// RunningMean returns the trailing running mean of data over n samples.
//
// out[i] is the mean of data[max(0, i-n+1) : i+1]. It is computed as the
// causal part of the convolution of data with n ones, divided by the number
// of samples that contributed to each position. Output i never depends on
// samples after i; a NaN only spoils the outputs whose window contains it.
func RunningMean(data []float64, n int) ([]float64, error) {
	out := make([]float64, len(data))
	if err := RunningMeanTo(out, data, n); err != nil {
		return nil, err
	}

	return out, nil
}

// RunningMeanTo writes the trailing running mean of data into dst.
// dst must have length len(data).
func RunningMeanTo(dst, data []float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, n)
	}
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(dst) != len(data) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(data), len(dst))
	}

	// A window longer than the series sums the same samples as one of
	// len(data) taps.
	sums, err := conv.Causal(data, ones(min(n, len(data))))
	if err != nil {
		return fmt.Errorf("smooth: %w", err)
	}

	head := min(n-1, len(data))
	for i := 0; i < head; i++ {
		dst[i] = sums[i] / float64(i+1)
	}

	if head < len(data) {
		vecmath.ScaleBlock(dst[head:], sums[head:], 1/float64(n))
	}

	return nil
}

func ones(n int) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = 1
	}
	return k
}
