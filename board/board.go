// Package board implements the placement grid for the tiling search: a
// fixed-size rectangle whose cells are either empty or own the index of the
// piece covering them, with first-open-cell anchored placement and
// clone-on-branch semantics.
package board

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/polyomino"
)

// Empty marks a cell not yet covered by any piece.
const Empty = -1

// Board is a width*height grid plus the ordered sequence of placed shapes.
// Cells hold Empty or an index into Pieces. A board is mutated only by
// appending placements; once full it is read-only to downstream consumers.
type Board struct {
	cells  []int
	pieces []*polyomino.Polyomino
	width  int
	height int
}

// New creates an empty board.
func New(width, height int) *Board {
	if width < 1 || height < 1 {
		log.Panic().Int("width", width).Int("height", height).
			Msg("board: dimensions must be positive")
	}
	cells := make([]int, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{cells: cells, width: width, height: height}
}

// Width reports the board width.
func (b *Board) Width() int { return b.width }

// Height reports the board height.
func (b *Board) Height() int { return b.height }

// Pieces returns the placed shapes in placement order. The slice is shared;
// callers must not modify it.
func (b *Board) Pieces() []*polyomino.Polyomino {
	return b.pieces
}

// Get returns the piece index at (x, y). ok is false out of bounds; in
// bounds, Empty means the cell is uncovered.
func (b *Board) Get(x, y int) (index int, ok bool) {
	if !b.inBounds(x, y) {
		return Empty, false
	}
	return b.cells[x+y*b.width], true
}

// set writes a piece index into an empty in-bounds cell. The search never
// legally writes anywhere else, so both violations are fatal.
func (b *Board) set(x, y, value int) {
	if !b.inBounds(x, y) {
		log.Panic().Int("x", x).Int("y", y).Int("value", value).
			Msg("board: set out of bounds")
	}
	i := x + y*b.width
	if b.cells[i] != Empty {
		log.Panic().Int("x", x).Int("y", y).Int("occupant", b.cells[i]).Int("value", value).
			Msg("board: cell already occupied")
	}
	b.cells[i] = value
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// firstOpenCell scans row-major (y outer, x inner) for the first empty cell.
func (b *Board) firstOpenCell() (x, y int, ok bool) {
	for i, cell := range b.cells {
		if cell == Empty {
			return i % b.width, i / b.width, true
		}
	}
	return 0, 0, false
}

// IsFull reports whether every cell is covered.
func (b *Board) IsFull() bool {
	_, _, ok := b.firstOpenCell()
	return !ok
}

// tryPlace checks whether the shape, anchored at the first open cell, stays
// in bounds and covers only empty cells. It commits nothing.
func (b *Board) tryPlace(p *polyomino.Polyomino) (x, y int, ok bool) {
	baseX, baseY, ok := b.firstOpenCell()
	if !ok {
		// Board already full: a normal rejection, not an error.
		return 0, 0, false
	}
	for _, c := range p.Coords() {
		index, inBounds := b.Get(baseX+c.X, baseY+c.Y)
		if !inBounds || index != Empty {
			return 0, 0, false
		}
	}
	return baseX, baseY, true
}

func (b *Board) placeAt(p *polyomino.Polyomino, baseX, baseY int) {
	index := len(b.pieces)
	for _, c := range p.Coords() {
		b.set(baseX+c.X, baseY+c.Y, index)
	}
	b.pieces = append(b.pieces, p)
}

// Place anchors the shape's origin at the first open cell and commits it,
// mutating the board. It fails without partial effects when the shape would
// leave the board or overlap a piece.
//
// Anchoring only at the first open cell is the search-space reduction that
// makes exhaustive enumeration tractable: that cell must be covered by some
// piece eventually, so no tiling is missed, while permutations of the same
// placements collapse into one visit order.
func (b *Board) Place(p *polyomino.Polyomino) bool {
	x, y, ok := b.tryPlace(p)
	if !ok {
		return false
	}
	b.placeAt(p, x, y)
	return true
}

// PlaceClone attempts the placement on a copy, leaving the receiver
// untouched. Sibling branches of the search must never share cell storage,
// so the copy is deep. Returns nil when the placement is rejected.
func (b *Board) PlaceClone(p *polyomino.Polyomino) *Board {
	x, y, ok := b.tryPlace(p)
	if !ok {
		return nil
	}
	clone := b.clone()
	clone.placeAt(p, x, y)
	return clone
}

func (b *Board) clone() *Board {
	return &Board{
		cells:  append([]int(nil), b.cells...),
		pieces: append([]*polyomino.Polyomino(nil), b.pieces...),
		width:  b.width,
		height: b.height,
	}
}

// FromSolution rebuilds a board by placing the given shapes in order. Every
// placement must succeed; a rejection means the sequence is not a valid
// tiling of this board size.
func FromSolution(width, height int, shapes []*polyomino.Polyomino) (*Board, bool) {
	b := New(width, height)
	for _, p := range shapes {
		if !b.Place(p) {
			return nil, false
		}
	}
	return b, true
}

// String renders the grid one row per line, piece indices as digits and '?'
// for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if cell := b.cells[x+y*b.width]; cell == Empty {
				sb.WriteByte('?')
			} else {
				sb.WriteString(strconv.Itoa(cell))
			}
		}
		if y != b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
