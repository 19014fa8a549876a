package engine

import "github.com/lixenwraith/turmite/core"

// Observer receives the stream of tile writes produced by the step
// engine. Renderers and tests consume it read-only; the callback runs
// inside the tick, so implementations must not block
type Observer interface {
	OnTileWrite(tick uint64, c core.Coord, m core.RGB, created bool)
}

// TileWrite is one recorded grid mutation
type TileWrite struct {
	Tick    uint64
	Coord   core.Coord
	Marker  core.RGB
	Created bool
}

// TraceRecorder is an Observer that appends every write to a slice.
// Two runs with identical inputs produce identical traces
type TraceRecorder struct {
	Writes []TileWrite
}

// OnTileWrite records one write
func (r *TraceRecorder) OnTileWrite(tick uint64, c core.Coord, m core.RGB, created bool) {
	r.Writes = append(r.Writes, TileWrite{
		Tick:    tick,
		Coord:   c,
		Marker:  m,
		Created: created,
	})
}
