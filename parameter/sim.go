package parameter

import "time"

// Movement & Grid Geometry
const (
	// StepLength is the distance the ant advances per tick, in pixel space
	StepLength = 20.0

	// TileSize is the edge length of one grid cell in pixel space.
	// Equal to StepLength so one tick moves exactly one cell
	TileSize = 20.0
)

// Simulation Defaults
const (
	// DefaultPattern is the classic Langton's ant rule
	DefaultPattern = "RL"

	// DefaultTickRate is the simulation rate in ticks per second
	DefaultTickRate = 60

	// MinTickInterval caps the tick rate; intervals below this are rejected
	MinTickInterval = time.Millisecond
)
