// Package symmetry models the eight axis-aligned symmetries of a square
// grid: the identity, the horizontal and vertical mirrors, the diagonal
// transpose, and their compositions.
package symmetry

import "fmt"

// Symmetry is one element of the group, encoded as three independent flags.
// A symmetry is evaluated on a coordinate by first swapping x and y when
// Diagonal is set, then negating x when Horizontal is set, then negating y
// when Vertical is set.
type Symmetry struct {
	Horizontal bool
	Vertical   bool
	Diagonal   bool
}

const (
	horizontalMask = 0b001
	verticalMask   = 0b010
	diagonalMask   = 0b100

	// Count is the order of the group.
	Count = 8
)

// All lists the eight symmetries in index order.
var All = [Count]Symmetry{
	fromIndexUnchecked(0),
	fromIndexUnchecked(1),
	fromIndexUnchecked(2),
	fromIndexUnchecked(3),
	fromIndexUnchecked(4),
	fromIndexUnchecked(5),
	fromIndexUnchecked(6),
	fromIndexUnchecked(7),
}

// Identity is the do-nothing symmetry.
var Identity = Symmetry{}

func fromIndexUnchecked(index int) Symmetry {
	return Symmetry{
		Horizontal: index&horizontalMask != 0,
		Vertical:   index&verticalMask != 0,
		Diagonal:   index&diagonalMask != 0,
	}
}

// FromIndex decodes a 3-bit index (bit0=horizontal, bit1=vertical,
// bit2=diagonal). Indices outside [0, 8) indicate a caller bug and panic.
func FromIndex(index int) Symmetry {
	if index < 0 || index >= Count {
		panic(fmt.Sprintf("symmetry: index %d out of range [0, %d)", index, Count))
	}
	return fromIndexUnchecked(index)
}

// Index encodes the symmetry back to its 3-bit index.
func (s Symmetry) Index() int {
	ret := 0
	if s.Horizontal {
		ret |= horizontalMask
	}
	if s.Vertical {
		ret |= verticalMask
	}
	if s.Diagonal {
		ret |= diagonalMask
	}
	return ret
}

// MirrorHorizontal returns the symmetry with a horizontal mirror applied.
// The diagonal swap runs before the axis flips when a symmetry is evaluated,
// so mirroring the result horizontally after a transpose is the same as
// mirroring the input vertically before it.
func (s Symmetry) MirrorHorizontal() Symmetry {
	if s.Diagonal {
		s.Vertical = !s.Vertical
	} else {
		s.Horizontal = !s.Horizontal
	}
	return s
}

// MirrorVertical returns the symmetry with a vertical mirror applied.
func (s Symmetry) MirrorVertical() Symmetry {
	if s.Diagonal {
		s.Horizontal = !s.Horizontal
	} else {
		s.Vertical = !s.Vertical
	}
	return s
}

// Rotate returns the symmetry rotated clockwise by 90 degrees, clockwise
// times. Negative counts rotate counter-clockwise.
func (s Symmetry) Rotate(clockwise int) Symmetry {
	clockwise %= 4
	if clockwise < 0 {
		clockwise += 4
	}

	for i := 0; i < clockwise; i++ {
		// Each quarter turn toggles the diagonal. Whether it drags the
		// horizontal or the vertical flag along depends on the diagonal
		// state beforehand.
		if s.Diagonal {
			s.Diagonal = false
			s.Horizontal = !s.Horizontal
		} else {
			s.Diagonal = true
			s.Vertical = !s.Vertical
		}
	}
	return s
}

// Inverse returns the symmetry that undoes s. The pure mirrors and the
// transpose are involutions; only the two quarter-turn rotations differ from
// their own inverse, which amounts to swapping the mirror flags when the
// diagonal flag is set.
func (s Symmetry) Inverse() Symmetry {
	if s.Diagonal {
		s.Horizontal, s.Vertical = s.Vertical, s.Horizontal
	}
	return s
}

func (s Symmetry) String() string {
	name := ""
	if s.Diagonal {
		name += "d"
	}
	if s.Horizontal {
		name += "h"
	}
	if s.Vertical {
		name += "v"
	}
	if name == "" {
		name = "identity"
	}
	return name
}
