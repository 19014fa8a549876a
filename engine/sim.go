package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/turmite/pattern"
	"github.com/lixenwraith/turmite/status"
)

// Sim owns the whole simulation state: the immutable turn table, the
// tile grid and the ant. All mutation happens through Step; there is
// no package-level state
type Sim struct {
	Table *pattern.Table
	Grid  *TileGrid
	Ant   *Ant

	tick     uint64
	observer Observer

	// Cached metric pointers
	statCells    *atomic.Int64
	statRevisits *atomic.Int64
}

// NewSim creates a simulation at the initial state: empty grid, ant at
// the origin facing north. A nil registry gets a private one; a nil
// observer disables tracing
func NewSim(table *pattern.Table, reg *status.Registry, obs Observer) *Sim {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Sim{
		Table:        table,
		Grid:         NewTileGrid(),
		Ant:          NewAnt(),
		observer:     obs,
		statCells:    reg.Ints.Get("sim.cells"),
		statRevisits: reg.Ints.Get("sim.revisits"),
	}
}

// Tick returns the number of completed steps
func (s *Sim) Tick() uint64 {
	return s.tick
}

// Step advances the simulation by one tick:
// read (or create) the tile under the ant, repaint it, rotate the
// heading by the tile's turn command, move one step length.
// The only possible error is the table lookup invariant violation,
// which cannot occur while the grid is written exclusively by Step
func (s *Sim) Step() error {
	coord := s.Ant.Coord()

	var turn pattern.TurnCommand
	if current, ok := s.Grid.Get(coord); ok {
		repaint, t, err := s.Table.Next(current)
		if err != nil {
			return err
		}
		turn = t
		s.Grid.Set(coord, repaint)
		s.statRevisits.Add(1)
		if s.observer != nil {
			s.observer.OnTileWrite(s.tick, coord, repaint, false)
		}
	} else {
		marker, t := s.Table.First()
		turn = t
		s.Grid.Set(coord, marker)
		s.statCells.Add(1)
		if s.observer != nil {
			s.observer.OnTileWrite(s.tick, coord, marker, true)
		}
	}

	s.Ant.Heading = turn.Apply(s.Ant.Heading)
	s.Ant.Advance()
	s.tick++
	return nil
}

// RunTicks advances the simulation n ticks synchronously, stopping at
// the first error. Batch driver for tests and offline runs; the live
// path goes through ClockScheduler
func (s *Sim) RunTicks(n uint64) error {
	for i := uint64(0); i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}
