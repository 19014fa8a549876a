package pattern

import (
	"math/rand"
	"strings"

	"github.com/lixenwraith/turmite/core"
)

// Entry pairs a marker color with the turn taken when the ant
// reads that marker off a tile
type Entry struct {
	Marker core.RGB
	Turn   TurnCommand
}

// Table is the ordered, cyclic turn rule of the automaton.
// Immutable after Parse; shared read-only between the step engine,
// renderers and tests
type Table struct {
	entries []Entry
}

// turnForRune maps a lowercased pattern character to its command.
// Unlisted characters are skipped by Parse, not rejected
func turnForRune(r rune) (TurnCommand, bool) {
	switch r {
	case 'l':
		return TurnLeft, true
	case 'r':
		return TurnRight, true
	case 'u':
		return UTurn, true
	case 'n':
		return NoTurn, true
	default:
		return NoTurn, false
	}
}

// Parse builds a table from a user-supplied pattern string such as
// "RL" or "ruln". Each recognized character appends one entry with a
// fresh marker drawn from rng. Fewer than 2 entries is ErrInvalidPattern;
// a marker collision between entries is ErrMarkerCollision
func Parse(spec string, rng *rand.Rand) (*Table, error) {
	var entries []Entry
	for _, r := range strings.ToLower(spec) {
		turn, ok := turnForRune(r)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Marker: core.RandomRGB(rng),
			Turn:   turn,
		})
	}

	if len(entries) < 2 {
		return nil, ErrInvalidPattern
	}

	// The cyclic Next scan assumes marker -> index is injective
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].Marker.Equal(entries[j].Marker) {
				return nil, ErrMarkerCollision
			}
		}
	}

	return &Table{entries: entries}, nil
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the i-th entry
func (t *Table) Entry(i int) Entry {
	return t.entries[i]
}

// First returns the marker painted on a never-visited tile and the turn
// taken there. The marker is the SECOND configured entry's color paired
// with the FIRST entry's turn, matching the reference behavior; the very
// first tile the ant creates carries entries[1].Marker
func (t *Table) First() (core.RGB, TurnCommand) {
	return t.entries[1].Marker, t.entries[0].Turn
}

// Next looks up the marker currently on a tile and returns the
// replacement marker and the turn to take. The table is scanned as a
// cyclic sequence of adjacent entry pairs: matching entries[i] yields
// entries[(i+1) mod N].Marker with entries[i].Turn.
// A marker that did not originate from this table is an invariant
// violation and returns an InternalError wrapping ErrUnknownMarker
func (t *Table) Next(current core.RGB) (core.RGB, TurnCommand, error) {
	n := len(t.entries)
	for i := 0; i < n; i++ {
		if t.entries[i].Marker.Equal(current) {
			return t.entries[(i+1)%n].Marker, t.entries[i].Turn, nil
		}
	}
	return core.RGB{}, NoTurn, &InternalError{Err: ErrUnknownMarker}
}
