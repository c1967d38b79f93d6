package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/board"
	"github.com/Phlosioneer/polyomino-generator/polyomino"
	"github.com/Phlosioneer/polyomino-generator/symmetry"
)

// Reducer computes canonical tiling representatives using the catalog's
// transform table.
type Reducer struct {
	catalog *polyomino.Catalog
}

// NewReducer creates a reducer backed by the given catalog. Every shape on
// the boards it reduces must come from that catalog.
func NewReducer(catalog *polyomino.Catalog) *Reducer {
	return &Reducer{catalog: catalog}
}

// applicable returns the symmetries valid for the board's aspect ratio. The
// diagonal transpose only maps the board onto itself when it is square.
func applicable(b *board.Board) []symmetry.Symmetry {
	square := b.Width() == b.Height()
	syms := make([]symmetry.Symmetry, 0, symmetry.Count)
	for _, sym := range symmetry.All {
		if sym.Diagonal && !square {
			continue
		}
		syms = append(syms, sym)
	}
	return syms
}

// reading produces the solution describing the board transformed by sym:
// grid cells are visited in row-major order through the symmetry-mapped
// coordinate, piece indices are collected in first-seen order, and each
// piece's shape is mapped through the transform table.
//
// The cell walk reads the transformed board as B'(x, y) = B(sym(x, y)), so a
// piece region of B reappears in B' pulled back through sym; its normalized
// shape is therefore the transform-table image under the inverse symmetry.
// Using the inverse keeps every reading a genuine, rebuildable tiling of the
// transformed board. Since the group is closed under inversion, minimizing
// over all readings still minimizes over the whole orbit.
func (r *Reducer) reading(b *board.Board, sym symmetry.Symmetry) Solution {
	pieces := b.Pieces()
	shapeSym := sym.Inverse()

	sol := make(Solution, 0, len(pieces))
	seen := make([]bool, len(pieces))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sx, sy := x, y
			if sym.Diagonal {
				sx, sy = sy, sx
			}
			if sym.Horizontal {
				sx = b.Width() - 1 - sx
			}
			if sym.Vertical {
				sy = b.Height() - 1 - sy
			}

			index, ok := b.Get(sx, sy)
			if !ok || index == board.Empty {
				log.Panic().Int("x", sx).Int("y", sy).Str("symmetry", sym.String()).
					Msg("solver: transformed cell lookup failed on a full board")
			}
			if !seen[index] {
				seen[index] = true
				sol = append(sol, r.catalog.Transform(pieces[index], shapeSym))
			}
		}
	}
	return sol
}

// CanonicalForm reduces a fully tiled board to the minimum solution, under
// the solution total order, across every symmetry applicable to its aspect
// ratio. All members of a tiling's symmetry orbit share that minimum, which
// is what makes it usable as an exact deduplication key.
func (r *Reducer) CanonicalForm(b *board.Board) Solution {
	if !b.IsFull() {
		log.Panic().Str("board", b.String()).
			Msg("solver: canonical form requested for a board with open cells")
	}

	var best Solution
	for _, sym := range applicable(b) {
		candidate := r.reading(b, sym)
		if best == nil || candidate.Compare(best) < 0 {
			best = candidate
		}
	}
	return best
}
