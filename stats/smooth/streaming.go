package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Running is a streaming trailing running mean. Feeding a series through
// Process, in any block partition, yields the values RunningMean returns for
// the whole series.
type Running struct {
	window []float64
	pos    int
	count  int
	sum    float64

	// sinceResync counts updates since the sum was last recomputed from the
	// window, bounding the drift of the incremental sum.
	sinceResync int
}

// NewRunning creates a streaming running mean over n samples.
func NewRunning(n int) (*Running, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, n)
	}

	return &Running{window: make([]float64, n)}, nil
}

// Window returns the window length.
func (r *Running) Window() int {
	return len(r.window)
}

// Count returns how many samples have been processed since the last Reset.
func (r *Running) Count() int {
	return r.count
}

// Process adds one sample and returns the mean of the samples in the window.
func (r *Running) Process(x float64) float64 {
	n := len(r.window)

	r.sum += x - r.window[r.pos]
	r.window[r.pos] = x
	r.pos++
	if r.pos == n {
		r.pos = 0
	}
	r.count++

	r.sinceResync++
	if r.sinceResync >= n {
		r.sum = vecmath.Sum(r.window)
		r.sinceResync = 0
	}

	return r.sum / float64(min(r.count, n))
}

// ProcessBlock smooths src into dst. dst must have length len(src).
func (r *Running) ProcessBlock(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(src), len(dst))
	}

	for i, x := range src {
		dst[i] = r.Process(x)
	}

	return nil
}

// ProcessInPlace smooths buf in place.
func (r *Running) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = r.Process(x)
	}
}

// Reset clears the window so the next sample starts a new series.
func (r *Running) Reset() {
	for i := range r.window {
		r.window[i] = 0
	}
	r.pos = 0
	r.count = 0
	r.sum = 0
	r.sinceResync = 0
}
