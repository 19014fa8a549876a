package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allHeadings = []Heading{North, East, South, West}

func TestHeadingLeftCycle(t *testing.T) {
	expected := map[Heading]Heading{
		North: West,
		West:  South,
		South: East,
		East:  North,
	}
	for from, to := range expected {
		assert.Equal(t, to, from.Left(), "left from %s", from)
	}
}

func TestHeadingRightCycle(t *testing.T) {
	expected := map[Heading]Heading{
		North: East,
		East:  South,
		South: West,
		West:  North,
	}
	for from, to := range expected {
		assert.Equal(t, to, from.Right(), "right from %s", from)
	}
}

func TestHeadingOppositeIsInvolutive(t *testing.T) {
	for _, h := range allHeadings {
		assert.NotEqual(t, h, h.Opposite())
		assert.Equal(t, h, h.Opposite().Opposite())
	}
}

func TestHeadingLeftRightCancel(t *testing.T) {
	for _, h := range allHeadings {
		assert.Equal(t, h, h.Left().Right())
		assert.Equal(t, h, h.Right().Left())
	}
}

func TestHeadingFourLeftsIsIdentity(t *testing.T) {
	for _, h := range allHeadings {
		assert.Equal(t, h, h.Left().Left().Left().Left())
	}
}

func TestHeadingUnitVectors(t *testing.T) {
	cases := []struct {
		h      Heading
		dx, dy float64
	}{
		{North, 0, 1},
		{South, 0, -1},
		{East, 1, 0},
		{West, -1, 0},
	}
	for _, tc := range cases {
		dx, dy := tc.h.Unit()
		assert.Equal(t, tc.dx, dx, "%s dx", tc.h)
		assert.Equal(t, tc.dy, dy, "%s dy", tc.h)
	}
}

func TestDiscretize(t *testing.T) {
	cases := []struct {
		x, y float64
		want Coord
	}{
		{0, 0, Coord{0, 0}},
		{20, 0, Coord{1, 0}},
		{-20, 40, Coord{-1, 2}},
		{60, -20, Coord{3, -1}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Discretize(tc.x, tc.y, 20), "(%v,%v)", tc.x, tc.y)
	}
}
