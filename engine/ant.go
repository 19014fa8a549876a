package engine

import (
	"github.com/lixenwraith/turmite/core"
	"github.com/lixenwraith/turmite/parameter"
)

// Ant is the agent's state: continuous pixel-space position plus
// facing direction. Exactly one instance exists per simulation,
// owned by Sim and mutated only by Step
type Ant struct {
	X, Y    float64
	Heading core.Heading
}

// NewAnt places the ant at the origin facing north
func NewAnt() *Ant {
	return &Ant{Heading: core.North}
}

// Coord returns the grid cell the ant currently occupies
func (a *Ant) Coord() core.Coord {
	return core.Discretize(a.X, a.Y, parameter.TileSize)
}

// Advance moves the ant one step length along its heading
func (a *Ant) Advance() {
	dx, dy := a.Heading.Unit()
	a.X += dx * parameter.StepLength
	a.Y += dy * parameter.StepLength
}
