package coord

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrEmptyCoordinates is returned when a lookup is asked to search an empty axis.
var ErrEmptyCoordinates = errors.New("coord: empty coordinate array")

// NearestIndex returns the index of the value closest to target.
// Ties resolve to the lowest index.
//
// NaN values are skipped, so masked cells of a coordinate field are never
// returned unless every value is NaN, in which case the result is 0.
func NearestIndex(values []float64, target float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyCoordinates
	}

	dist := make([]float64, len(values))
	for i, v := range values {
		dist[i] = math.Abs(v - target)
	}

	return floats.MinIdx(dist), nil
}

// LonToIndex returns the index of the longitude closest to targetLon.
func LonToIndex(longitudes []float64, targetLon float64) (int, error) {
	return NearestIndex(longitudes, targetLon)
}

// LatToIndex returns the index of the latitude closest to targetLat.
func LatToIndex(latitudes []float64, targetLat float64) (int, error) {
	return NearestIndex(latitudes, targetLat)
}

// CoordinateToIndex returns the indices of the grid longitude and latitude
// closest to the target point. Each axis is searched on its own.
func CoordinateToIndex(longitudes, latitudes []float64, targetLon, targetLat float64) (lonIdx, latIdx int, err error) {
	lonIdx, err = LonToIndex(longitudes, targetLon)
	if err != nil {
		return 0, 0, err
	}

	latIdx, err = LatToIndex(latitudes, targetLat)
	if err != nil {
		return 0, 0, err
	}

	return lonIdx, latIdx, nil
}

// GridToIndex is CoordinateToIndex for 2D coordinate fields. Each field is
// searched over all of its elements and the row-major flat index of the
// nearest value is returned; use Unravel to get the row and column.
func GridToIndex(longitudes, latitudes mat.Matrix, targetLon, targetLat float64) (lonIdx, latIdx int, err error) {
	lonIdx, err = NearestIndex(flatten(longitudes), targetLon)
	if err != nil {
		return 0, 0, err
	}

	latIdx, err = NearestIndex(flatten(latitudes), targetLat)
	if err != nil {
		return 0, 0, err
	}

	return lonIdx, latIdx, nil
}

// Unravel converts a row-major flat index into a row and column for a matrix
// with cols columns.
func Unravel(flat, cols int) (row, col int) {
	return flat / cols, flat % cols
}

func flatten(m mat.Matrix) []float64 {
	if m == nil {
		return nil
	}

	// Contiguous dense storage is already row-major.
	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		if raw.Stride == raw.Cols {
			return raw.Data[:raw.Rows*raw.Cols]
		}
	}

	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}

	return out
}
