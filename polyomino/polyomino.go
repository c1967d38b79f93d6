// Package polyomino generates the catalog of small connected grid shapes
// used by the tiling search, together with a precomputed table mapping every
// shape under every board symmetry back to a catalog entry.
package polyomino

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/symmetry"
)

// MaxCells is the hard cap on the number of cells in a shape.
const MaxCells = 4

// Coord is a cell position relative to a shape's own origin.
type Coord struct {
	X int
	Y int
}

// coordLess orders coordinates by x, then y.
func coordLess(a, b Coord) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Polyomino is an immutable normalized shape: at most MaxCells unique
// coordinates, always containing (0,0), sorted by (x, then y). Shapes are
// built once by catalog generation and shared read-only afterwards.
type Polyomino struct {
	coords []Coord

	// transforms maps each symmetry index to the catalog index of the
	// shape obtained by applying that symmetry. Filled in by the catalog;
	// it is a cache, never part of shape identity.
	transforms [symmetry.Count]int
}

// New builds a normalized shape from the given coordinates. The coordinates
// must include the origin and fit in MaxCells; violating either is a caller
// bug and panics.
func New(coords []Coord) *Polyomino {
	if len(coords) == 0 || len(coords) > MaxCells {
		log.Panic().Int("cells", len(coords)).Msg("polyomino: cell count out of range")
	}
	hasOrigin := false
	for _, c := range coords {
		if c == (Coord{}) {
			hasOrigin = true
			break
		}
	}
	if !hasOrigin {
		log.Panic().Interface("coords", coords).Msg("polyomino: shape does not contain the origin")
	}

	p := &Polyomino{coords: append([]Coord(nil), coords...)}
	p.sortCoords()
	return p
}

func (p *Polyomino) sortCoords() {
	// Insertion sort; shapes never exceed four cells.
	for i := 1; i < len(p.coords); i++ {
		for j := i; j > 0 && coordLess(p.coords[j], p.coords[j-1]); j-- {
			p.coords[j], p.coords[j-1] = p.coords[j-1], p.coords[j]
		}
	}
}

// Size reports the number of cells.
func (p *Polyomino) Size() int {
	return len(p.coords)
}

// Coords returns the shape's normalized coordinates. The slice is shared;
// callers must not modify it.
func (p *Polyomino) Coords() []Coord {
	return p.coords
}

// Equal reports coordinate equality. The transform table is a cache and is
// ignored.
func (p *Polyomino) Equal(other *Polyomino) bool {
	if len(p.coords) != len(other.coords) {
		return false
	}
	for i, c := range p.coords {
		if c != other.coords[i] {
			return false
		}
	}
	return true
}

// Compare establishes the total order over shapes: shorter shapes first,
// then coordinate sequences pairwise, first difference deciding. Returns a
// negative, zero, or positive value in the usual way.
func Compare(a, b *Polyomino) int {
	if len(a.coords) != len(b.coords) {
		return len(a.coords) - len(b.coords)
	}
	for i := range a.coords {
		ac, bc := a.coords[i], b.coords[i]
		if ac.X != bc.X {
			return ac.X - bc.X
		}
		if ac.Y != bc.Y {
			return ac.Y - bc.Y
		}
	}
	return 0
}

// applyFlips transforms a scratch shape in place: swap x/y on the diagonal
// transpose, then negate x on the horizontal mirror, then negate y on the
// vertical mirror. The result is re-normalized by translating the cell with
// the smallest y (ties broken by smallest x) to the origin and re-sorting.
func (p *Polyomino) applyFlips(sym symmetry.Symmetry) {
	for i := range p.coords {
		if sym.Diagonal {
			p.coords[i].X, p.coords[i].Y = p.coords[i].Y, p.coords[i].X
		}
		if sym.Horizontal {
			p.coords[i].X = -p.coords[i].X
		}
		if sym.Vertical {
			p.coords[i].Y = -p.coords[i].Y
		}
	}

	anchor := p.coords[0]
	for _, c := range p.coords[1:] {
		if c.Y < anchor.Y || (c.Y == anchor.Y && c.X < anchor.X) {
			anchor = c
		}
	}
	for i := range p.coords {
		p.coords[i].X -= anchor.X
		p.coords[i].Y -= anchor.Y
	}

	p.sortCoords()
}

// clone copies the shape's coordinates into a fresh scratch shape.
func (p *Polyomino) clone() *Polyomino {
	return &Polyomino{coords: append([]Coord(nil), p.coords...)}
}

// String draws the shape with '#' cells, '@' marking the origin.
func (p *Polyomino) String() string {
	minX, maxX, maxY := p.coords[0].X, p.coords[0].X, p.coords[0].Y
	for _, c := range p.coords[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	var b strings.Builder
	for y := 0; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			switch {
			case !p.contains(Coord{x, y}):
				b.WriteByte(' ')
			case x == 0 && y == 0:
				b.WriteByte('@')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Polyomino) contains(c Coord) bool {
	for _, pc := range p.coords {
		if pc == c {
			return true
		}
	}
	return false
}
