// Package area computes the surface area of latitude/longitude grid cells on
// a spherical Earth.
//
// A cell spanning latitudes lat1..lat2 and 1/nLon of a full turn in longitude
// has area 2*pi*r^2*|sin(lat2) - sin(lat1)|/nLon. [SurfaceMatrix] applies this
// to a whole regular grid, and [TotalArea] and [WeightedMean] consume the
// resulting matrix:
//
//	surface, err := area.SurfaceMatrix(lons, lats)
//	mean, err := area.WeightedMean(temperature, surface)
//
// The default radius is [EarthRadius]; use [WithRadius] for other spheres.
package area
