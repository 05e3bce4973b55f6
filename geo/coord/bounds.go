package coord

import (
	"errors"
	"fmt"
)

// Errors returned by bounds computations.
var (
	ErrTooFewCoordinates = errors.New("coord: at least two coordinates are required")
	ErrLengthMismatch    = errors.New("coord: buffer length mismatch")
)

// Bounds returns the N+1 cell edges of N regularly spaced cell centers.
//
// The step is coordinates[1]-coordinates[0] and is assumed to hold for the
// whole axis; the spacing is not checked. Edge k is
// coordinates[0] - step/2 + k*step, so every center sits halfway between two
// consecutive edges.
func Bounds(coordinates []float64) ([]float64, error) {
	if len(coordinates) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCoordinates, len(coordinates))
	}

	out := make([]float64, len(coordinates)+1)
	if err := BoundsTo(out, coordinates); err != nil {
		return nil, err
	}

	return out, nil
}

// BoundsTo writes the cell edges of coordinates into dst.
// dst must have length len(coordinates)+1.
func BoundsTo(dst, coordinates []float64) error {
	if len(coordinates) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewCoordinates, len(coordinates))
	}
	if len(dst) != len(coordinates)+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(coordinates)+1, len(dst))
	}

	step := coordinates[1] - coordinates[0]
	first := coordinates[0] - step/2
	for k := range dst {
		dst[k] = first + float64(k)*step
	}

	return nil
}

// Midpoints returns the centers of the cells delimited by bounds.
func Midpoints(bounds []float64) ([]float64, error) {
	if len(bounds) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCoordinates, len(bounds))
	}

	out := make([]float64, len(bounds)-1)
	for k := range out {
		out[k] = (bounds[k] + bounds[k+1]) / 2
	}

	return out, nil
}
