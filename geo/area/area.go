package area

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-climgrid/geo/coord"
)

// Errors returned by area computations.
var (
	ErrInvalidDivisions = errors.New("area: number of longitude divisions must be positive")
	ErrShapeMismatch    = errors.New("area: matrix shape mismatch")
	ErrZeroArea         = errors.New("area: total weight is zero")
)

// CellArea returns the area in square meters of the cell between latitudes
// lat1 and lat2 (degrees) that covers 1/nLon of a full longitude turn.
// The latitude order does not matter.
func CellArea(nLon int, lat1, lat2 float64, opts ...Option) (float64, error) {
	if nLon <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDivisions, nLon)
	}

	cfg := ApplyOptions(opts...)

	return cellArea(cfg.Radius, nLon, lat1, lat2), nil
}

func cellArea(radius float64, nLon int, lat1, lat2 float64) float64 {
	const degToRad = 2 * math.Pi / 360

	band := math.Abs(math.Sin(lat2*degToRad) - math.Sin(lat1*degToRad))

	return 2 * math.Pi * radius * radius * band / float64(nLon)
}

// SurfaceMatrix returns the cell areas of the regular grid spanned by
// longitudes and latitudes, as a len(latitudes) x len(longitudes) matrix.
//
// Cell edges in latitude come from coord.Bounds, so latitudes must hold at
// least two values. Area does not depend on longitude, every row is constant.
func SurfaceMatrix(longitudes, latitudes []float64, opts ...Option) (*mat.Dense, error) {
	nLon := len(longitudes)
	if nLon == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDivisions, nLon)
	}

	bounds, err := coord.Bounds(latitudes)
	if err != nil {
		return nil, fmt.Errorf("area: latitude bounds: %w", err)
	}

	cfg := ApplyOptions(opts...)

	nLat := len(latitudes)
	data := make([]float64, nLat*nLon)
	for j := 0; j < nLat; j++ {
		a := cellArea(cfg.Radius, nLon, bounds[j], bounds[j+1])
		row := data[j*nLon : (j+1)*nLon]
		for i := range row {
			row[i] = a
		}
	}

	return mat.NewDense(nLat, nLon, data), nil
}

// TotalArea returns the sum of all cells of surface.
func TotalArea(surface mat.Matrix) float64 {
	r, c := surface.Dims()
	row := make([]float64, c)

	var total float64
	for j := 0; j < r; j++ {
		mat.Row(row, j, surface)
		total += vecmath.Sum(row)
	}

	return total
}

// WeightedMean returns the area-weighted mean of field:
// sum(field*surface) / sum(surface).
//
// NaN cells of field are treated as masked and left out of both sums.
func WeightedMean(field, surface mat.Matrix) (float64, error) {
	r, c := field.Dims()
	if sr, sc := surface.Dims(); sr != r || sc != c {
		return 0, fmt.Errorf("%w: field %dx%d, surface %dx%d", ErrShapeMismatch, r, c, sr, sc)
	}

	fRow := make([]float64, c)
	sRow := make([]float64, c)

	var weighted, weight float64
	for j := 0; j < r; j++ {
		mat.Row(fRow, j, field)
		mat.Row(sRow, j, surface)

		if !floats.HasNaN(fRow) {
			weighted += vecmath.DotProduct(fRow, sRow)
			weight += vecmath.Sum(sRow)
			continue
		}

		for i, v := range fRow {
			if math.IsNaN(v) {
				continue
			}
			weighted += v * sRow[i]
			weight += sRow[i]
		}
	}

	if weight == 0 {
		return 0, ErrZeroArea
	}

	return weighted / weight, nil
}
