package engine

import "github.com/lixenwraith/turmite/core"

// TileGrid is the sparse mapping from grid coordinate to the marker
// painted there. A coordinate is absent until the ant first visits it;
// once present its marker is only ever replaced, never removed.
// Growth is unbounded for the life of the simulation
type TileGrid struct {
	tiles map[core.Coord]core.RGB
}

// NewTileGrid creates an empty grid
func NewTileGrid() *TileGrid {
	return &TileGrid{
		tiles: make(map[core.Coord]core.RGB),
	}
}

// Get returns the marker at c and whether the tile exists
func (g *TileGrid) Get(c core.Coord) (core.RGB, bool) {
	m, ok := g.tiles[c]
	return m, ok
}

// Set inserts or overwrites the marker at c
func (g *TileGrid) Set(c core.Coord, m core.RGB) {
	g.tiles[c] = m
}

// Len returns the number of painted tiles
func (g *TileGrid) Len() int {
	return len(g.tiles)
}

// Range calls fn for every painted tile. Iteration order is unspecified;
// read-only collaborators snapshot what they need
func (g *TileGrid) Range(fn func(c core.Coord, m core.RGB)) {
	for c, m := range g.tiles {
		fn(c, m)
	}
}
