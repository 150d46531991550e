package adjacency

import "math"

// TileCountForRadius maps a sphere radius in meters to the recommended
// tile count: 96 tiles at the 6350 km reference radius, scaled linearly,
// truncated, floored to a multiple of TileCountStep and capped at
// MaxTileCount. Earth (6371 km) maps to 96, the Moon (1737.4 km) to 24.
//
// Radii below half a step map to 0 — too small to tile.
func TileCountForRadius(radiusMeters float64) int {
	size := int(radiusMeters / referenceRadiusMeters * referenceTileCount)
	if size < 0 {
		size = 0
	}
	size = size / TileCountStep * TileCountStep
	if size > MaxTileCount {
		size = MaxTileCount
	}

	return size
}

// TileAreaForRadius returns the surface area of one tile, in square
// meters, for a sphere of the given radius: total sphere area divided by
// TileCountForRadius. Radii that map to zero tiles yield +Inf.
func TileAreaForRadius(radiusMeters float64) float64 {
	tiles := TileCountForRadius(radiusMeters)
	area := 4 * math.Pi * radiusMeters * radiusMeters

	return area / float64(tiles)
}
