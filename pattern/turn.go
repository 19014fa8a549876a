package pattern

import "github.com/lixenwraith/turmite/core"

// TurnCommand is the instruction a marker maps to when the ant
// reads it back from the grid. Closed set; Apply is exhaustive
type TurnCommand uint8

const (
	TurnLeft TurnCommand = iota
	TurnRight
	UTurn
	NoTurn
)

// Apply rotates a heading by this command
func (t TurnCommand) Apply(h core.Heading) core.Heading {
	switch t {
	case TurnLeft:
		return h.Left()
	case TurnRight:
		return h.Right()
	case UTurn:
		return h.Opposite()
	default: // NoTurn
		return h
	}
}

// RotationDelta returns the visual rotation in degrees implied by this
// command, counter-clockwise positive. Consumed only by external renderers
func (t TurnCommand) RotationDelta() int {
	switch t {
	case TurnLeft:
		return 90
	case TurnRight:
		return -90
	case UTurn:
		return 180
	default:
		return 0
	}
}

func (t TurnCommand) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	case UTurn:
		return "uturn"
	default:
		return "none"
	}
}
