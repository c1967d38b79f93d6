package polyomino

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/symmetry"
)

// Catalog holds every generated shape up to a maximum cell count, sorted by
// the shape total order, with the symmetry transform table filled in. Build
// one at startup and share it read-only.
type Catalog struct {
	shapes  []*Polyomino
	maxSize int
}

// Generate enumerates all shapes of 1 up to maxSize cells.
//
// Starting from the single-cell shape at the origin, partial coordinate sets
// are grown one adjacent cell at a time. Candidate cells are restricted to
// the half-plane y >= 0 and, on the row y = 0, to x >= 0; together with the
// guaranteed origin cell this anchors every generated set at its
// top-left-most cell and prunes origin-row/column reflection duplicates
// during growth. Reflections along other axes still appear as separate
// entries, which is what the transform table and tiling-level
// canonicalization are for.
func Generate(maxSize int) *Catalog {
	if maxSize < 1 || maxSize > MaxCells {
		log.Panic().Int("maxSize", maxSize).Int("limit", MaxCells).
			Msg("catalog: max shape size out of range")
	}

	seen := make(map[string]*Polyomino)
	base := []Coord{{0, 0}}
	insert(seen, New(base))

	var stack [][]Coord
	if maxSize > 1 {
		stack = append(stack, base)
	}

	for len(stack) > 0 {
		partial := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range adjacentCoords(partial) {
			grown := make([]Coord, len(partial), len(partial)+1)
			copy(grown, partial)
			grown = append(grown, c)
			insert(seen, New(grown))
			if len(grown) < maxSize {
				stack = append(stack, grown)
			}
		}
	}

	shapes := make([]*Polyomino, 0, len(seen))
	for _, p := range seen {
		shapes = append(shapes, p)
	}
	sort.Slice(shapes, func(i, j int) bool {
		return Compare(shapes[i], shapes[j]) < 0
	})

	cat := &Catalog{shapes: shapes, maxSize: maxSize}
	cat.computeTransforms()

	log.Debug().Int("shapes", len(shapes)).Int("maxSize", maxSize).
		Msg("catalog: generated")
	return cat
}

func insert(seen map[string]*Polyomino, p *Polyomino) {
	seen[coordKey(p.coords)] = p
}

func coordKey(coords []Coord) string {
	var b strings.Builder
	for _, c := range coords {
		fmt.Fprintf(&b, "%d,%d;", c.X, c.Y)
	}
	return b.String()
}

// adjacentCoords lists the axis-neighbors of every cell in the partial
// shape, excluding cells already present and cells outside the generation
// half-plane.
func adjacentCoords(partial []Coord) []Coord {
	candidates := make(map[Coord]struct{})
	for _, c := range partial {
		candidates[Coord{c.X - 1, c.Y}] = struct{}{}
		candidates[Coord{c.X + 1, c.Y}] = struct{}{}
		candidates[Coord{c.X, c.Y - 1}] = struct{}{}
		candidates[Coord{c.X, c.Y + 1}] = struct{}{}
	}

	ret := make([]Coord, 0, len(candidates))
	for c := range candidates {
		if c.Y < 0 || (c.Y == 0 && c.X < 0) {
			continue
		}
		taken := false
		for _, pc := range partial {
			if pc == c {
				taken = true
				break
			}
		}
		if !taken {
			ret = append(ret, c)
		}
	}
	return ret
}

// computeTransforms fills every shape's transform table. A transformed
// scratch copy that matches no catalog entry means generation or
// normalization is broken, so it aborts with the offending shape and its
// similarly sized neighbors.
func (c *Catalog) computeTransforms() {
	for i, shape := range c.shapes {
		for _, sym := range symmetry.All {
			scratch := shape.clone()
			scratch.applyFlips(sym)

			idx, ok := c.indexOf(scratch)
			if !ok {
				similar := make([]string, 0, 8)
				for _, other := range c.shapes {
					if other.Size() == scratch.Size() {
						similar = append(similar, other.String())
					}
				}
				log.Panic().
					Str("shape", scratch.String()).
					Interface("coords", scratch.coords).
					Str("symmetry", sym.String()).
					Strs("similar", similar).
					Msg("catalog: transformed shape not in catalog")
			}
			shape.transforms[sym.Index()] = idx
		}

		if shape.transforms[symmetry.Identity.Index()] != i {
			log.Panic().Int("index", i).Str("shape", shape.String()).
				Msg("catalog: identity transform does not map shape to itself")
		}
	}
}

// indexOf locates a shape by coordinate equality via binary search over the
// sorted catalog.
func (c *Catalog) indexOf(p *Polyomino) (int, bool) {
	i := sort.Search(len(c.shapes), func(i int) bool {
		return Compare(c.shapes[i], p) >= 0
	})
	if i < len(c.shapes) && c.shapes[i].Equal(p) {
		return i, true
	}
	return 0, false
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// MaxSize reports the generation cell limit.
func (c *Catalog) MaxSize() int {
	return c.maxSize
}

// Shape returns the catalog entry at the given index.
func (c *Catalog) Shape(i int) *Polyomino {
	return c.shapes[i]
}

// Shapes returns the sorted catalog entries. The slice is shared; callers
// must not modify it.
func (c *Catalog) Shapes() []*Polyomino {
	return c.shapes
}

// Index returns the catalog position of the given shape, which must be a
// catalog entry or an equal shape.
func (c *Catalog) Index(p *Polyomino) (int, bool) {
	return c.indexOf(p)
}

// Transform returns the catalog shape produced by applying the given
// symmetry to p. It is a pure table lookup; p must be a catalog entry.
func (c *Catalog) Transform(p *Polyomino, sym symmetry.Symmetry) *Polyomino {
	return c.shapes[p.transforms[sym.Index()]]
}
