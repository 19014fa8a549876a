package core

// Heading is the ant's facing direction, one of four compass values
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Left returns the heading after a 90° counter-clockwise rotation
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default: // East
		return North
	}
}

// Right returns the heading after a 90° clockwise rotation
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default: // West
		return North
	}
}

// Opposite returns the reversed heading
func (h Heading) Opposite() Heading {
	switch h {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default: // West
		return East
	}
}

// Unit returns the movement direction in screen space
// (north is +Y, east is +X)
func (h Heading) Unit() (dx, dy float64) {
	switch h {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	default: // West
		return -1, 0
	}
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}
