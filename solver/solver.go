package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/board"
	"github.com/Phlosioneer/polyomino-generator/polyomino"
)

// Enumerator exhaustively visits every legal placement sequence on a board
// of the configured size and hands each fully tiled board to a callback.
type Enumerator struct {
	catalog *polyomino.Catalog
	width   int
	height  int
	limits  board.Limits
}

// NewEnumerator configures an exhaustive search over the given board size
// and piece budgets.
func NewEnumerator(catalog *polyomino.Catalog, width, height int, limits board.Limits) *Enumerator {
	return &Enumerator{catalog: catalog, width: width, height: height, limits: limits}
}

// Enumerate runs the search to exhaustion, calling emit once for every
// distinct complete tiling. Emission order is an implementation detail.
//
// The driver is an explicit stack of board snapshots: pop a state, attempt
// every catalog shape at its first open cell, push the survivors. There is
// no undo step; branches are independent copies, so abandoning one is just
// never revisiting it.
func (e *Enumerator) Enumerate(emit func(*board.Board)) {
	stack := []*board.Restricted{board.NewRestricted(e.width, e.height, e.limits)}

	visited := 0
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		for _, shape := range e.catalog.Shapes() {
			next := state.PlaceClone(shape)
			if next == nil {
				continue
			}
			if next.Board().IsFull() {
				emit(next.Board())
			} else {
				stack = append(stack, next)
			}
		}
	}

	log.Debug().Int("statesVisited", visited).
		Int("width", e.width).Int("height", e.height).
		Msg("solver: search exhausted")
}

// Count runs the search and reports the number of complete tilings without
// deduplication.
func (e *Enumerator) Count() int {
	total := 0
	e.Enumerate(func(*board.Board) {
		total++
	})
	return total
}
