package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/turmite/core"
	"github.com/lixenwraith/turmite/pattern"
	"github.com/lixenwraith/turmite/status"
)

func mustTable(t *testing.T, spec string, seed int64) *pattern.Table {
	t.Helper()
	table, err := pattern.Parse(spec, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return table
}

func TestStepFirstVisitPaintsSecondMarker(t *testing.T) {
	table := mustTable(t, "RL", 42)
	sim := NewSim(table, nil, nil)

	require.NoError(t, sim.Step())

	// First tile carries the table's SECOND marker with the FIRST turn
	m, ok := sim.Grid.Get(core.Coord{X: 0, Y: 0})
	require.True(t, ok)
	assert.True(t, m.Equal(table.Entry(1).Marker))

	// entries[0].Turn is Right: north -> east, one step east
	assert.Equal(t, core.East, sim.Ant.Heading)
	assert.Equal(t, core.Coord{X: 1, Y: 0}, sim.Ant.Coord())
}

func TestStepLangtonSquareWalk(t *testing.T) {
	// With "RL" every first visit turns right, so the ant walks a
	// 2x2 square and returns to the origin after four ticks
	table := mustTable(t, "RL", 42)
	sim := NewSim(table, nil, nil)

	require.NoError(t, sim.RunTicks(4))
	assert.Equal(t, core.Coord{X: 0, Y: 0}, sim.Ant.Coord())
	assert.Equal(t, core.North, sim.Ant.Heading)
	assert.Equal(t, 4, sim.Grid.Len())

	// Tick 5 is the first revisit: origin is repainted with the cyclic
	// successor and the stored turn (Left) applies
	require.NoError(t, sim.Step())
	m, ok := sim.Grid.Get(core.Coord{X: 0, Y: 0})
	require.True(t, ok)
	assert.True(t, m.Equal(table.Entry(0).Marker))
	assert.Equal(t, core.West, sim.Ant.Heading)
	assert.Equal(t, core.Coord{X: -1, Y: 0}, sim.Ant.Coord())
	assert.Equal(t, 4, sim.Grid.Len())
}

func TestStepRevisitMetrics(t *testing.T) {
	reg := status.NewRegistry()
	sim := NewSim(mustTable(t, "RL", 42), reg, nil)

	require.NoError(t, sim.RunTicks(5))
	assert.Equal(t, int64(4), reg.Ints.Get("sim.cells").Load())
	assert.Equal(t, int64(1), reg.Ints.Get("sim.revisits").Load())
}

func TestStepDeterministicTrace(t *testing.T) {
	const seed = 77
	const ticks = 500

	run := func() (*TraceRecorder, *Sim) {
		table := mustTable(t, "ruln", seed)
		rec := &TraceRecorder{}
		sim := NewSim(table, nil, rec)
		require.NoError(t, sim.RunTicks(ticks))
		return rec, sim
	}

	recA, simA := run()
	recB, simB := run()

	require.Equal(t, ticks, len(recA.Writes))
	assert.Equal(t, recA.Writes, recB.Writes)
	assert.Equal(t, simA.Ant.X, simB.Ant.X)
	assert.Equal(t, simA.Ant.Y, simB.Ant.Y)
	assert.Equal(t, simA.Ant.Heading, simB.Ant.Heading)
	assert.Equal(t, simA.Grid.Len(), simB.Grid.Len())
}

func TestGridMonotonicity(t *testing.T) {
	rec := &TraceRecorder{}
	sim := NewSim(mustTable(t, "rl", 5), nil, rec)
	require.NoError(t, sim.RunTicks(1000))

	// Every coordinate is created exactly once and never leaves the grid
	created := make(map[core.Coord]int)
	for _, w := range rec.Writes {
		if w.Created {
			created[w.Coord]++
		} else {
			// A revisit write must target an already-created coordinate
			assert.Contains(t, created, w.Coord)
		}
		_, ok := sim.Grid.Get(w.Coord)
		assert.True(t, ok, "coord %v missing from final grid", w.Coord)
	}
	for c, n := range created {
		assert.Equal(t, 1, n, "coord %v created %d times", c, n)
	}
	assert.Equal(t, len(created), sim.Grid.Len())
}

func TestStepEveryMarkerStaysInTable(t *testing.T) {
	table := mustTable(t, "ruln", 123)
	sim := NewSim(table, nil, nil)
	require.NoError(t, sim.RunTicks(2000))

	sim.Grid.Range(func(c core.Coord, m core.RGB) {
		found := false
		for i := 0; i < table.Len(); i++ {
			if table.Entry(i).Marker.Equal(m) {
				found = true
				break
			}
		}
		assert.True(t, found, "marker at %v not from table", c)
	})
}
