// Package coord locates points on longitude/latitude grid axes and derives
// cell edges from cell centers.
//
// Lookups return the index of the nearest grid value on each axis. They never
// interpolate, and the two axes are searched independently:
//
//	i, j, err := coord.CoordinateToIndex(lons, lats, 2.35, 48.85)
//
// Curvilinear grids stored as 2D coordinate fields use [GridToIndex], which
// searches each field over all of its cells and returns row-major flat indices.
//
// [Bounds] turns N regularly spaced centers into the N+1 edges of their cells.
// [Midpoints] goes the other way.
package coord
