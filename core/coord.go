package core

import "math"

// Coord is an integer grid coordinate, one tile per cell
type Coord struct {
	X, Y int
}

// Discretize maps a continuous pixel-space position to the grid cell
// it occupies, one cell per tileSize step
func Discretize(x, y, tileSize float64) Coord {
	return Coord{
		X: int(math.Round(x / tileSize)),
		Y: int(math.Round(y / tileSize)),
	}
}
