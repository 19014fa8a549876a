package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/turmite/core"
)

func TestTileGridGetAbsent(t *testing.T) {
	g := NewTileGrid()
	_, ok := g.Get(core.Coord{X: 0, Y: 0})
	assert.False(t, ok)
	assert.Equal(t, 0, g.Len())
}

func TestTileGridSetAndOverwrite(t *testing.T) {
	g := NewTileGrid()
	c := core.Coord{X: 2, Y: -3}

	first := core.RGB{R: 0.3, G: 0.4, B: 0.5}
	second := core.RGB{R: 0.6, G: 0.2, B: 0.7}

	g.Set(c, first)
	got, ok := g.Get(c)
	assert.True(t, ok)
	assert.True(t, got.Equal(first))
	assert.Equal(t, 1, g.Len())

	g.Set(c, second)
	got, ok = g.Get(c)
	assert.True(t, ok)
	assert.True(t, got.Equal(second))
	assert.Equal(t, 1, g.Len())
}

func TestTileGridRangeCoversAll(t *testing.T) {
	g := NewTileGrid()
	m := core.RGB{R: 0.5, G: 0.5, B: 0.5}
	coords := []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -4, Y: 7}}
	for _, c := range coords {
		g.Set(c, m)
	}

	seen := make(map[core.Coord]bool)
	g.Range(func(c core.Coord, _ core.RGB) {
		seen[c] = true
	})
	assert.Len(t, seen, len(coords))
	for _, c := range coords {
		assert.True(t, seen[c], "coord %v", c)
	}
}
